package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gotham/internal/models/db_models"
)

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)

	// EnsureByEmail returns the user row for email, creating one with the
	// default role when absent. Identities are created lazily on first sign-in.
	EnsureByEmail(ctx context.Context, email string) (*db_models.User, error)

	// DeleteByID removes the identity row for good. Account erasure is the
	// one hard-delete path in the system.
	DeleteByID(ctx context.Context, id string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (u *userRepository) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) EnsureByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).
		Where("email = ?", email).
		FirstOrCreate(&user, db_models.User{Email: email, Role: db_models.RoleUser}).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) DeleteByID(ctx context.Context, id string) error {
	return u.db.WithContext(ctx).
		Unscoped().
		Delete(&db_models.User{}, "id = ?", id).Error
}
