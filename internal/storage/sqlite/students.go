package sqlite

import (
	"context"
	"fmt"

	"github.com/rmacalintal/studentportal/internal/models"
	"github.com/rmacalintal/studentportal/internal/storage"
)

// CreateStudent inserts a new student record.
// Returns storage.ErrAlreadyExists when the id is already taken.
func (s *SQLiteStore) CreateStudent(ctx context.Context, student *models.Student) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO students (id, name, age, year_level, section, course) VALUES (?, ?, ?, ?, ?, ?)",
		student.ID, student.Name, student.Age, student.YearLevel, student.Section, student.Course,
	)
	if err != nil {
		if mapped := mappedErr(err); mapped == storage.ErrAlreadyExists {
			return mapped
		}
		return fmt.Errorf("failed to insert student: %w", err)
	}
	return nil
}

// ListStudents returns all student records, unfiltered, in insertion order.
func (s *SQLiteStore) ListStudents(ctx context.Context) ([]models.Student, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, age, year_level, section, course FROM students",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var st models.Student
		if err := rows.Scan(&st.ID, &st.Name, &st.Age, &st.YearLevel, &st.Section, &st.Course); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate students: %w", err)
	}

	return students, nil
}
