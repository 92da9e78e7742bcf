package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/rmacalintal/studentportal/internal/models"
	"github.com/rmacalintal/studentportal/internal/storage"
)

// ErrInvalidCredentials is returned for any failed login. Unknown accounts and
// wrong passwords are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// HashPassword hashes a plaintext password with bcrypt at the default cost.
// The upstream system stored passwords in the clear; hashing is a deliberate
// deviation, so seed data must be hashed through this function too.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Authenticator performs the two credential checks against the store.
type Authenticator struct {
	store storage.Store
}

// NewAuthenticator creates an authenticator backed by the given store.
func NewAuthenticator(store storage.Store) *Authenticator {
	return &Authenticator{store: store}
}

// AuthenticateAdmin verifies an admin username+password pair.
// Returns ErrInvalidCredentials on any mismatch.
func (a *Authenticator) AuthenticateAdmin(ctx context.Context, username, password string) (*models.Admin, error) {
	admin, err := a.store.GetAdmin(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// AuthenticateUser verifies a user username+password+role triple.
// Returns ErrInvalidCredentials on any mismatch.
func (a *Authenticator) AuthenticateUser(ctx context.Context, username, password, role string) (*models.User, error) {
	user, err := a.store.GetUserByLogin(ctx, username, role)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
