package services

import (
	"github.com/google/uuid"

	"practicas-backend/internal/flow"
	"practicas-backend/internal/models"
)

// Store contracts consumed by the document pipeline. *database.Client
// satisfies all of the relational ones; *ftp.Client satisfies FileRepository.
// Lookups return nil (not an error) for rows that do not exist.

type DocumentStore interface {
	InsertDocument(doc *models.Document) error
	GetDocumentByID(id uuid.UUID) (*models.Document, error)
	ListDocumentsByStudent(studentID uuid.UUID, status flow.Status) ([]models.Document, error)
	ListAcceptedTypes(studentID uuid.UUID) (map[flow.DocumentType]bool, error)
	UpdateDocumentStatusAndFile(id uuid.UUID, newStatus flow.Status, fileName, filePath string, expectedPriorStatus flow.Status) (int64, error)
	SoftDeleteDocument(id uuid.UUID, fileName, filePath string) error
}

type StudentDirectory interface {
	GetStudent(id uuid.UUID) (*models.Student, error)
}

type PracticeStore interface {
	GetActivePracticeByStudentID(studentID uuid.UUID) (*models.Practice, error)
	SetPracticeProgressStep(practiceID uuid.UUID, step int) error
}

type ApplicationStore interface {
	HasPreacceptedApplication(studentID uuid.UUID) (bool, error)
}

type AuditSink interface {
	InsertAuditRecord(rec *models.AuditRecord) error
}

type FileRepository interface {
	Store(remotePath string, data []byte) error
	Rename(oldPath, newPath string) error
	Delete(remotePath string) error
	DocumentPath(studentNumber, fileName string) string
}
