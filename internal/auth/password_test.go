package auth_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rmacalintal/studentportal/internal/auth"
	"github.com/rmacalintal/studentportal/internal/models"
	"github.com/rmacalintal/studentportal/internal/storage/sqlite"
)

func TestAuthenticator(t *testing.T) {
	ctx := context.Background()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "auth.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	adminHash, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if err := store.EnsureSeedAdmin(ctx, "admin", adminHash); err != nil {
		t.Fatalf("EnsureSeedAdmin failed: %v", err)
	}

	userHash, err := auth.HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	user := &models.User{
		ID: "U1", Name: "Maria Santos", Role: "student",
		Username: "maria", PasswordHash: userHash,
	}
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	authn := auth.NewAuthenticator(store)

	t.Run("admin login succeeds with seeded pair", func(t *testing.T) {
		admin, err := authn.AuthenticateAdmin(ctx, "admin", "password123")
		if err != nil {
			t.Fatalf("AuthenticateAdmin failed: %v", err)
		}
		if admin.Username != "admin" {
			t.Errorf("Unexpected admin: %+v", admin)
		}
	})

	t.Run("admin login fails on wrong password or unknown user", func(t *testing.T) {
		cases := []struct{ username, password string }{
			{"admin", "wrong"},
			{"ghost", "password123"},
			{"", ""},
		}
		for _, c := range cases {
			_, err := authn.AuthenticateAdmin(ctx, c.username, c.password)
			if !errors.Is(err, auth.ErrInvalidCredentials) {
				t.Errorf("(%q,%q): expected ErrInvalidCredentials, got %v", c.username, c.password, err)
			}
		}
	})

	t.Run("user login requires the exact triple", func(t *testing.T) {
		got, err := authn.AuthenticateUser(ctx, "maria", "secret123", "student")
		if err != nil {
			t.Fatalf("AuthenticateUser failed: %v", err)
		}
		if got.ID != "U1" {
			t.Errorf("Unexpected user: %+v", got)
		}

		cases := []struct{ username, password, role string }{
			{"maria", "secret123", "teacher"}, // right pair, wrong role
			{"maria", "wrong", "student"},
			{"ghost", "secret123", "student"},
		}
		for _, c := range cases {
			_, err := authn.AuthenticateUser(ctx, c.username, c.password, c.role)
			if !errors.Is(err, auth.ErrInvalidCredentials) {
				t.Errorf("(%q,%q,%q): expected ErrInvalidCredentials, got %v", c.username, c.password, c.role, err)
			}
		}
	})
}
