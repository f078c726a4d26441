package database

import (
	"fmt"

	"practicas-backend/internal/models"
)

// InsertAuditRecord appends one row to the audit trail. Callers treat the
// trail as fire-and-forget; a failure here must never abort the transition
// that triggered it.
func (c *Client) InsertAuditRecord(rec *models.AuditRecord) error {
	_, err := c.db.Exec(`
		INSERT INTO audit_log (table_name, action, user_id, user_role, details, document_id, student_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, rec.TableName, rec.Action, rec.UserID, rec.UserRole, rec.Details, rec.DocumentID, rec.StudentID)
	if err != nil {
		return fmt.Errorf("failed to insert audit record: %w", err)
	}
	return nil
}
