package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&User{}, &Model{}, &ModelUser{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUsers(t *testing.T, db *gorm.DB, names ...string) []User {
	t.Helper()
	users := make([]User, 0, len(names))
	for _, name := range names {
		user := User{Name: name, Position: "engineer"}
		if err := db.Create(&user).Error; err != nil {
			t.Fatalf("seed user %s: %v", name, err)
		}
		users = append(users, user)
	}
	return users
}

func TestLatestOnEmptyRegistry(t *testing.T) {
	registry := NewModelRegistry(setupTestDB(t), zap.NewNop())

	if _, err := registry.Latest(context.Background()); !errors.Is(err, ErrNoModel) {
		t.Fatalf("expected ErrNoModel, got %v", err)
	}

	version, err := registry.LatestVersion(context.Background())
	if err != nil {
		t.Fatalf("latest version failed: %v", err)
	}
	if version != 0 {
		t.Fatalf("expected version 0 on empty registry, got %d", version)
	}
}

func TestAppendAndLatest(t *testing.T) {
	db := setupTestDB(t)
	registry := NewModelRegistry(db, zap.NewNop())
	users := seedUsers(t, db, "alice", "bob")
	ctx := context.Background()

	if err := registry.Append(ctx, &Model{Version: 1, URL: "models/Faces_v1.mlmodel", Users: users[:1]}); err != nil {
		t.Fatalf("append v1 failed: %v", err)
	}
	if err := registry.Append(ctx, &Model{Version: 2, URL: "models/Faces_v2.mlmodel", Users: users}); err != nil {
		t.Fatalf("append v2 failed: %v", err)
	}

	latest, err := registry.Latest(ctx)
	if err != nil {
		t.Fatalf("latest failed: %v", err)
	}
	if latest.Version != 2 {
		t.Fatalf("expected latest version 2, got %d", latest.Version)
	}
	if latest.URL != "models/Faces_v2.mlmodel" {
		t.Fatalf("unexpected url: %s", latest.URL)
	}
	if len(latest.Users) != 2 {
		t.Fatalf("expected 2 recognizable users, got %d", len(latest.Users))
	}
	if latest.Users[0].Name != "alice" || latest.Users[1].Name != "bob" {
		t.Fatalf("unexpected users: %+v", latest.Users)
	}

	version, err := registry.LatestVersion(ctx)
	if err != nil {
		t.Fatalf("latest version failed: %v", err)
	}
	if version != 2 {
		t.Fatalf("expected latest version 2, got %d", version)
	}
}

func TestGetReturnsRequestedVersion(t *testing.T) {
	db := setupTestDB(t)
	registry := NewModelRegistry(db, zap.NewNop())
	users := seedUsers(t, db, "alice")
	ctx := context.Background()

	if err := registry.Append(ctx, &Model{Version: 1, URL: "models/Faces_v1.mlmodel", Users: users}); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := registry.Append(ctx, &Model{Version: 3, URL: "models/Faces_v3.mlmodel"}); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	model, err := registry.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if model.Version != 1 || len(model.Users) != 1 {
		t.Fatalf("unexpected model: %+v", model)
	}

	if _, err := registry.Get(ctx, 2); !errors.Is(err, ErrNoModel) {
		t.Fatalf("expected ErrNoModel for skipped version, got %v", err)
	}
}

func TestAppendRejectsDuplicateVersion(t *testing.T) {
	db := setupTestDB(t)
	registry := NewModelRegistry(db, zap.NewNop())
	users := seedUsers(t, db, "alice", "bob")
	ctx := context.Background()

	if err := registry.Append(ctx, &Model{Version: 1, URL: "models/Faces_v1.mlmodel", Users: users[:1]}); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	err := registry.Append(ctx, &Model{Version: 1, URL: "models/other.mlmodel", Users: users})
	if !errors.Is(err, ErrDuplicateVersion) {
		t.Fatalf("expected ErrDuplicateVersion, got %v", err)
	}

	// the failed append must leave the published row untouched
	latest, err := registry.Latest(ctx)
	if err != nil {
		t.Fatalf("latest failed: %v", err)
	}
	if latest.URL != "models/Faces_v1.mlmodel" || len(latest.Users) != 1 {
		t.Fatalf("duplicate append corrupted the registry: %+v", latest)
	}
}

func TestFindByIDsDropsMissingUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	users := seedUsers(t, db, "alice")
	ctx := context.Background()

	found, err := repo.FindByIDs(ctx, []uint{users[0].ID, 999})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(found) != 1 || found[0].Name != "alice" {
		t.Fatalf("expected only alice, got %+v", found)
	}

	found, err = repo.FindByIDs(ctx, nil)
	if err != nil {
		t.Fatalf("find with no ids failed: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("expected no users, got %+v", found)
	}
}
