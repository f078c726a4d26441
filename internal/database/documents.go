package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"practicas-backend/internal/flow"
	"practicas-backend/internal/models"
)

func (c *Client) InsertDocument(doc *models.Document) error {
	err := c.db.QueryRow(`
		INSERT INTO documents (id, student_id, type, file_name, file_path, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, doc.ID, doc.StudentID, doc.Type, doc.FileName, doc.FilePath, doc.Status).Scan(
		&doc.CreatedAt, &doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}
	return nil
}

// GetDocumentByID returns the document row, or nil when no active row with
// that id exists.
func (c *Client) GetDocumentByID(id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	err := c.db.QueryRow(`
		SELECT id, student_id, type, file_name, file_path, status, deleted, created_at, updated_at
		FROM documents
		WHERE id = $1 AND deleted = false
	`, id).Scan(
		&doc.ID, &doc.StudentID, &doc.Type, &doc.FileName, &doc.FilePath,
		&doc.Status, &doc.Deleted, &doc.CreatedAt, &doc.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &doc, nil
}

// ListDocumentsByStudent returns the student's active documents, optionally
// filtered by status when status is non-empty.
func (c *Client) ListDocumentsByStudent(studentID uuid.UUID, status flow.Status) ([]models.Document, error) {
	query := `
		SELECT id, student_id, type, file_name, file_path, status, deleted, created_at, updated_at
		FROM documents
		WHERE student_id = $1 AND deleted = false
		ORDER BY created_at DESC
	`
	args := []interface{}{studentID}
	if status != "" {
		query = `
			SELECT id, student_id, type, file_name, file_path, status, deleted, created_at, updated_at
			FROM documents
			WHERE student_id = $1 AND status = $2 AND deleted = false
			ORDER BY created_at DESC
		`
		args = append(args, status)
	}

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var doc models.Document
		err := rows.Scan(
			&doc.ID, &doc.StudentID, &doc.Type, &doc.FileName, &doc.FilePath,
			&doc.Status, &doc.Deleted, &doc.CreatedAt, &doc.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

func (c *Client) ListAcceptedTypes(studentID uuid.UUID) (map[flow.DocumentType]bool, error) {
	rows, err := c.db.Query(`
		SELECT DISTINCT type
		FROM documents
		WHERE student_id = $1 AND status = $2 AND deleted = false
	`, studentID, flow.StatusAceptado)
	if err != nil {
		return nil, fmt.Errorf("failed to list accepted types: %w", err)
	}
	defer rows.Close()

	accepted := make(map[flow.DocumentType]bool)
	for rows.Next() {
		var dt flow.DocumentType
		if err := rows.Scan(&dt); err != nil {
			return nil, fmt.Errorf("failed to scan accepted type: %w", err)
		}
		accepted[dt] = true
	}

	return accepted, rows.Err()
}

// UpdateDocumentStatusAndFile applies a status transition as a single
// conditional UPDATE. The WHERE clause re-checks the expected prior status,
// so a racing transition simply affects zero rows.
func (c *Client) UpdateDocumentStatusAndFile(id uuid.UUID, newStatus flow.Status, fileName, filePath string, expectedPriorStatus flow.Status) (int64, error) {
	res, err := c.db.Exec(`
		UPDATE documents
		SET status = $1, file_name = $2, file_path = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5 AND deleted = false
	`, newStatus, fileName, filePath, id, expectedPriorStatus)
	if err != nil {
		return 0, fmt.Errorf("failed to update document status: %w", err)
	}
	return res.RowsAffected()
}

func (c *Client) SoftDeleteDocument(id uuid.UUID, fileName, filePath string) error {
	_, err := c.db.Exec(`
		UPDATE documents
		SET status = $1, file_name = $2, file_path = $3, deleted = true, updated_at = NOW()
		WHERE id = $4 AND deleted = false
	`, flow.StatusEliminado, fileName, filePath, id)
	if err != nil {
		return fmt.Errorf("failed to soft-delete document: %w", err)
	}
	return nil
}
