package auth

import (
	"errors"
	"testing"
	"time"
)

func TestSessionManager(t *testing.T) {
	mgr := NewSessionManager("test-secret", time.Hour)

	t.Run("admin identity roundtrip", func(t *testing.T) {
		token, err := mgr.Issue(AdminIdentity("admin"))
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}

		id, err := mgr.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if id.Kind != KindAdmin {
			t.Errorf("Kind mismatch: got %q, want %q", id.Kind, KindAdmin)
		}
		if id.Username != "admin" {
			t.Errorf("Username mismatch: got %q", id.Username)
		}
		if id.UserID != "" || id.Role != "" {
			t.Errorf("Admin token leaked user fields: %+v", id)
		}
	})

	t.Run("user identity roundtrip", func(t *testing.T) {
		token, err := mgr.Issue(UserIdentity("U1", "student"))
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}

		id, err := mgr.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if id.Kind != KindUser || id.UserID != "U1" || id.Role != "student" {
			t.Errorf("Unexpected identity: %+v", id)
		}
	})

	t.Run("tampered token rejected", func(t *testing.T) {
		token, err := mgr.Issue(AdminIdentity("admin"))
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}

		_, err = mgr.Validate(token + "x")
		if !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("token signed with another secret rejected", func(t *testing.T) {
		other := NewSessionManager("other-secret", time.Hour)
		token, err := other.Issue(UserIdentity("U1", "student"))
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}

		if _, err := mgr.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expired := NewSessionManager("test-secret", -time.Minute)
		token, err := expired.Issue(AdminIdentity("admin"))
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}

		if _, err := mgr.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("Expected ErrInvalidToken, got %v", err)
		}
	})
}
