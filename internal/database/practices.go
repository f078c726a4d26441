package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"practicas-backend/internal/models"
)

// GetActivePracticeByStudentID returns the student's started practice, or nil
// when none is active. A partial unique index guarantees at most one.
func (c *Client) GetActivePracticeByStudentID(studentID uuid.UUID) (*models.Practice, error) {
	var p models.Practice
	err := c.db.QueryRow(`
		SELECT id, student_id, company_id, assessor_id, status, progress_step, deleted, created_at, updated_at
		FROM practices
		WHERE student_id = $1 AND status = $2 AND deleted = false
	`, studentID, models.PracticeStarted).Scan(
		&p.ID, &p.StudentID, &p.CompanyID, &p.AssessorID,
		&p.Status, &p.ProgressStep, &p.Deleted, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active practice: %w", err)
	}
	return &p, nil
}

func (c *Client) SetPracticeProgressStep(practiceID uuid.UUID, step int) error {
	_, err := c.db.Exec(`
		UPDATE practices
		SET progress_step = $1, updated_at = NOW()
		WHERE id = $2 AND deleted = false
	`, step, practiceID)
	if err != nil {
		return fmt.Errorf("failed to set practice progress step: %w", err)
	}
	return nil
}
