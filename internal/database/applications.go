package database

import (
	"fmt"

	"github.com/google/uuid"
)

// HasPreacceptedApplication reports whether the student holds an application
// in the pre-accepted state. The document flow consults this before accepting
// a CartaAceptacion upload.
func (c *Client) HasPreacceptedApplication(studentID uuid.UUID) (bool, error) {
	var count int
	err := c.db.QueryRow(`
		SELECT COUNT(*)
		FROM applications
		WHERE student_id = $1 AND status = 'preaccepted' AND deleted = false
	`, studentID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check preaccepted application: %w", err)
	}
	return count > 0, nil
}
