// Package auth implements credential checks and browser-session tokens.
//
// A session is an HS256-signed token carried in an HttpOnly cookie. The token
// holds exactly one identity marker: an admin username, or a user id plus
// role. The two marker kinds are mutually exclusive label sets with no
// hierarchy between them.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken is returned for malformed, forged, or expired tokens.
	ErrInvalidToken = errors.New("invalid or expired session token")
)

// Identity kinds stored inside a session token.
const (
	KindAdmin = "admin"
	KindUser  = "user"
)

// Identity is the authenticated principal for one request. Absence of an
// Identity means anonymous.
type Identity struct {
	// Kind is KindAdmin or KindUser.
	Kind string

	// Username is set for admin identities.
	Username string

	// UserID and Role are set for user identities.
	UserID string
	Role   string
}

// AdminIdentity builds the identity marker for a logged-in admin.
func AdminIdentity(username string) Identity {
	return Identity{Kind: KindAdmin, Username: username}
}

// UserIdentity builds the identity marker for a logged-in user.
func UserIdentity(id, role string) Identity {
	return Identity{Kind: KindUser, UserID: id, Role: role}
}

// sessionClaims is the JWT payload for a session token.
type sessionClaims struct {
	Kind     string `json:"kind"`
	Username string `json:"username,omitempty"`
	UserID   string `json:"user_id,omitempty"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// SessionManager signs and validates session tokens.
type SessionManager struct {
	secretKey []byte
	ttl       time.Duration
}

// NewSessionManager creates a session manager with the given signing secret
// and token lifetime. secretKey should be a strong random string.
func NewSessionManager(secretKey string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
}

// TTL reports the configured token lifetime, used to set cookie expiry.
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a signed session token for the given identity.
func (m *SessionManager) Issue(id Identity) (string, error) {
	now := time.Now()
	claims := &sessionClaims{
		Kind:     id.Kind,
		Username: id.Username,
		UserID:   id.UserID,
		Role:     id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a session token, returning the identity it
// carries.
func (m *SessionManager) Validate(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&sessionClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Kind != KindAdmin && claims.Kind != KindUser {
		return nil, ErrInvalidToken
	}

	return &Identity{
		Kind:     claims.Kind,
		Username: claims.Username,
		UserID:   claims.UserID,
		Role:     claims.Role,
	}, nil
}
