package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoModel is returned by registry reads when no model has been published.
var ErrNoModel = errors.New("no model published")

// ErrDuplicateVersion indicates an append with an already-published version.
// With the single training worker serializing appends it should be
// unreachable; seeing it means the version-reservation invariant is broken.
var ErrDuplicateVersion = errors.New("model version already exists")

// ModelRegistry is the append-only store of published models. A model row
// and its user links become visible together or not at all.
type ModelRegistry struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewModelRegistry creates a new registry backed by the given database.
func NewModelRegistry(db *gorm.DB, logger *zap.Logger) *ModelRegistry {
	return &ModelRegistry{db: db, logger: logger.Named("model_registry")}
}

// AutoMigrate ensures the schema is available.
func (r *ModelRegistry) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&User{}, &Model{}, &ModelUser{})
}

// Append publishes a model and its recognizable-user links in a single
// transaction. Callers must have durably written the artifact beforehand;
// this is the last step of a training round.
func (r *ModelRegistry) Append(ctx context.Context, model *Model) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Model{}).Where("version = ?", model.Version).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateVersion
		}
		if err := tx.Create(&Model{Version: model.Version, URL: model.URL}).Error; err != nil {
			return err
		}
		for _, user := range model.Users {
			link := ModelUser{UserID: user.ID, ModelVersion: model.Version}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.logger.Info("model published",
		zap.Int64("version", model.Version),
		zap.String("url", model.URL),
		zap.Int("users", len(model.Users)))
	return nil
}

// Latest returns the model with the maximum version, with its recognizable
// users loaded. It always reads the durable store; the result is never
// cached, so readers observe a new model as soon as Append commits.
func (r *ModelRegistry) Latest(ctx context.Context) (*Model, error) {
	var model Model
	err := r.db.WithContext(ctx).Order("version DESC").First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoModel
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadUsers(ctx, &model); err != nil {
		return nil, err
	}
	return &model, nil
}

// Get retrieves a published model by version.
func (r *ModelRegistry) Get(ctx context.Context, version int64) (*Model, error) {
	var model Model
	err := r.db.WithContext(ctx).First(&model, "version = ?", version).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoModel
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadUsers(ctx, &model); err != nil {
		return nil, err
	}
	return &model, nil
}

// LatestVersion returns the maximum published version, or 0 when the
// registry is empty. Used to seed the training queue's version counter.
func (r *ModelRegistry) LatestVersion(ctx context.Context) (int64, error) {
	var version int64
	err := r.db.WithContext(ctx).
		Model(&Model{}).
		Select("COALESCE(MAX(version), 0)").
		Scan(&version).Error
	if err != nil {
		return 0, err
	}
	return version, nil
}

func (r *ModelRegistry) loadUsers(ctx context.Context, model *Model) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Joins("JOIN users_models ON users_models.user_id = users.id").
		Where("users_models.model_version = ?", model.Version).
		Order("users.id").
		Find(&model.Users).Error
}
