package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rmacalintal/studentportal/internal/models"
	"github.com/rmacalintal/studentportal/internal/storage"
)

// GetAdmin retrieves an admin account by username.
func (s *SQLiteStore) GetAdmin(ctx context.Context, username string) (*models.Admin, error) {
	admin := &models.Admin{}
	err := s.db.QueryRowContext(ctx,
		"SELECT username, password_hash FROM admins WHERE username = ?",
		username,
	).Scan(&admin.Username, &admin.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return admin, nil
}

// CreateUser inserts a new login-capable account.
// Returns storage.ErrAlreadyExists when the id is already taken.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, name, age, role, username, password_hash, course, section, year, subjects)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Name, user.Age, user.Role, user.Username,
		user.PasswordHash, user.Course, user.Section, user.Year, user.Subjects,
	)
	if err != nil {
		if mapped := mappedErr(err); mapped == storage.ErrAlreadyExists {
			return mapped
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByLogin retrieves a user by username and role. The password hash is
// compared by the caller; the exact-triple semantics of login are preserved by
// matching both fields here.
func (s *SQLiteStore) GetUserByLogin(ctx context.Context, username, role string) (*models.User, error) {
	return s.getUser(ctx, "username = ? AND role = ?", username, role)
}

// GetUserByID retrieves a user by id.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.getUser(ctx, "id = ?", id)
}

func (s *SQLiteStore) getUser(ctx context.Context, where string, args ...any) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, age, role, username, password_hash, course, section, year, subjects
		 FROM users WHERE `+where,
		args...,
	).Scan(
		&user.ID, &user.Name, &user.Age, &user.Role, &user.Username,
		&user.PasswordHash, &user.Course, &user.Section, &user.Year, &user.Subjects,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
