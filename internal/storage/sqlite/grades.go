package sqlite

import (
	"context"
	"fmt"

	"github.com/rmacalintal/studentportal/internal/models"
)

// CreateGrade inserts a grade row for a user.
func (s *SQLiteStore) CreateGrade(ctx context.Context, grade *models.Grade) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO grades (student_id, subject, grade) VALUES (?, ?, ?)",
		grade.StudentID, grade.Subject, grade.Grade,
	)
	if err != nil {
		return fmt.Errorf("failed to insert grade: %w", err)
	}
	return nil
}

// ListGradesByStudent returns all grade rows for the given user id.
// Rows come back in store iteration order; the certificate export depends on
// this order being preserved, so no ORDER BY is applied.
func (s *SQLiteStore) ListGradesByStudent(ctx context.Context, studentID string) ([]models.Grade, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT student_id, subject, grade FROM grades WHERE student_id = ?",
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query grades: %w", err)
	}
	defer rows.Close()

	var grades []models.Grade
	for rows.Next() {
		var g models.Grade
		if err := rows.Scan(&g.StudentID, &g.Subject, &g.Grade); err != nil {
			return nil, fmt.Errorf("failed to scan grade: %w", err)
		}
		grades = append(grades, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate grades: %w", err)
	}

	return grades, nil
}
