package identity

import (
	"context"
	"errors"

	"transport/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserStore defines the persistence contract for user accounts.
type UserStore interface {
	Add(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}

// GormUserStore implements UserStore using GORM.
type GormUserStore struct {
	db *gorm.DB
}

// NewGormUserStore creates a GORM-backed user store.
func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

// Add persists a new user account.
func (s *GormUserStore) Add(ctx context.Context, user *User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("user", user.Username, err)
		}
		return err
	}
	return nil
}

// GetByUsername retrieves a user by username.
func (s *GormUserStore) GetByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	if err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", username)
		}
		return nil, err
	}
	return &user, nil
}

// GetByID retrieves a user by identifier.
func (s *GormUserStore) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var user User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}
	return &user, nil
}
