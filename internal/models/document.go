package models

import (
	"time"

	"github.com/google/uuid"

	"practicas-backend/internal/flow"
)

type Document struct {
	ID        uuid.UUID         `json:"id"`
	StudentID uuid.UUID         `json:"student_id"`
	Type      flow.DocumentType `json:"type"`
	FileName  string            `json:"file_name"`
	FilePath  string            `json:"file_path"`
	Status    flow.Status       `json:"status"`
	Deleted   bool              `json:"deleted"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type Student struct {
	ID         uuid.UUID `json:"id"`
	Number     string    `json:"number"`
	AssessorID uuid.UUID `json:"assessor_id"`
	Deleted    bool      `json:"deleted"`
}

type AuditRecord struct {
	TableName  string    `json:"table_name"`
	Action     string    `json:"action"`
	UserID     uuid.UUID `json:"user_id"`
	UserRole   string    `json:"user_role"`
	Details    string    `json:"details"`
	DocumentID uuid.UUID `json:"document_id"`
	StudentID  uuid.UUID `json:"student_id"`
}
