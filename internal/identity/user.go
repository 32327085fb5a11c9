// Package identity provides user accounts, password hashing, and JWT
// issuance for the HTTP adapter. It is deliberately separate from the
// domain core: user accounts are infrastructure, not fleet domain state.
package identity

import (
	"strings"
	"time"

	"transport/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Roles understood by the authorization middleware.
const (
	RoleAdmin   = "Admin"
	RolePlanner = "Planner"
)

// User is the account record behind the auth endpoints.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Email        string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	FullName     string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(100);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "users".
func (User) TableName() string {
	return "users"
}

// NewUser creates a user account with a bcrypt-hashed password.
func NewUser(username, email, fullName, password, role string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if strings.TrimSpace(password) == "" {
		return nil, errs.NewValueIsRequiredError("password")
	}
	if err := ValidateRole(role); err != nil {
		return nil, err
	}

	user := &User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		FullName:  strings.TrimSpace(fullName),
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	return user, nil
}

// ValidateRole checks the role against the closed set of known roles.
func ValidateRole(role string) error {
	switch role {
	case RoleAdmin, RolePlanner:
		return nil
	default:
		return errs.NewValueIsInvalidError("role must be Admin or Planner")
	}
}

// SetPassword replaces the stored hash with a bcrypt hash of the password.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
