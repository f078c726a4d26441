package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"practicas-backend/internal/models"
)

// GetStudent returns the student row, or nil for an unknown or soft-deleted
// student.
func (c *Client) GetStudent(id uuid.UUID) (*models.Student, error) {
	var student models.Student
	err := c.db.QueryRow(`
		SELECT id, number, assessor_id, deleted
		FROM students
		WHERE id = $1 AND deleted = false
	`, id).Scan(&student.ID, &student.Number, &student.AssessorID, &student.Deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return &student, nil
}
