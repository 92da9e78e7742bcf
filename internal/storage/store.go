// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/rmacalintal/studentportal/internal/models"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned when an insert collides with an existing
	// primary key.
	ErrAlreadyExists = errors.New("record already exists")
)

// Store defines the persistence operations the portal needs.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the handlers.
type Store interface {
	// GetAdmin retrieves an admin account by username.
	// Returns ErrNotFound if no such admin exists.
	GetAdmin(ctx context.Context, username string) (*models.Admin, error)

	// CreateStudent inserts a new student record.
	// Returns ErrAlreadyExists if the student id is already taken.
	CreateStudent(ctx context.Context, student *models.Student) error

	// ListStudents returns all student records in insertion order.
	ListStudents(ctx context.Context) ([]models.Student, error)

	// CreateUser inserts a new login-capable account. Accounts are seeded
	// externally (there is no registration route).
	// Returns ErrAlreadyExists if the user id is already taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByLogin retrieves a user by username and role.
	// Returns ErrNotFound if no such account exists.
	GetUserByLogin(ctx context.Context, username, role string) (*models.User, error)

	// GetUserByID retrieves a user by id.
	// Returns ErrNotFound if no such account exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateGrade inserts a grade row for a user.
	CreateGrade(ctx context.Context, grade *models.Grade) error

	// ListGradesByStudent returns all grade rows whose student_id matches the
	// given user id, in store iteration order.
	ListGradesByStudent(ctx context.Context, studentID string) ([]models.Grade, error)

	// Close releases any resources held by the store.
	Close() error
}
