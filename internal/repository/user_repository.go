package repository

import (
	"context"

	"gorm.io/gorm"
)

// UserRepository provides persistence APIs for registered users.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new repository instance.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user and fills in its assigned id.
func (r *UserRepository) Create(ctx context.Context, user *User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Get retrieves a user by id.
func (r *UserRepository) Get(ctx context.Context, id uint) (*User, error) {
	var user User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDs returns the users matching the given ids. Ids without a matching
// row are simply absent from the result; callers that resolve classifier
// labels rely on that to drop stale labels silently.
func (r *UserRepository) FindByIDs(ctx context.Context, ids []uint) ([]User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
