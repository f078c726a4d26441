package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"practicas-backend/internal/flow"
	"practicas-backend/internal/models"
)

// DocumentService drives the document lifecycle:
//
//	Pendiente -> EnRevision -> {Aceptado | Rechazado}
//
// with Pendiente and Rechazado removable into Eliminado. A rejected document
// stays Rechazado; the student's next upload is evaluated fresh against the
// flow, which asks for the same type again.
//
// The remote file store and the database are mutated as two separate steps.
// For status transitions the file rename goes first and a database failure
// afterward surfaces as StorageInconsistencyError. Remove is the one
// exception: the database is authoritative and the rename is best-effort.
type DocumentService struct {
	documents    DocumentStore
	students     StudentDirectory
	applications ApplicationStore
	files        FileRepository
	audit        AuditSink
	gate         *ApprovalGate
	sync         *PracticeStepSync
}

func NewDocumentService(
	documents DocumentStore,
	students StudentDirectory,
	practices PracticeStore,
	applications ApplicationStore,
	files FileRepository,
	audit AuditSink,
) *DocumentService {
	return &DocumentService{
		documents:    documents,
		students:     students,
		applications: applications,
		files:        files,
		audit:        audit,
		gate:         NewApprovalGate(students, documents),
		sync:         NewPracticeStepSync(practices),
	}
}

// SubmitForReview moves the caller's own Pendiente document into EnRevision.
func (s *DocumentService) SubmitForReview(documentID uuid.UUID, actor Actor) (*models.Document, error) {
	doc, err := s.getActiveDocument(documentID)
	if err != nil {
		return nil, err
	}
	if err := s.gate.CheckOwner(doc, actor); err != nil {
		return nil, err
	}
	if doc.Status != flow.StatusPendiente {
		return nil, fmt.Errorf("document %s is %s, expected %s: %w", doc.ID, doc.Status, flow.StatusPendiente, ErrInvalidState)
	}
	return s.transition(doc, flow.StatusEnRevision, actor, "submit_for_review")
}

// Approve moves an EnRevision document into Aceptado. The caller must be the
// assigned assessor or an admin, and every predecessor type must already be
// accepted. On success the practice progress step is synced.
func (s *DocumentService) Approve(documentID uuid.UUID, actor Actor) (*models.Document, error) {
	doc, err := s.getActiveDocument(documentID)
	if err != nil {
		return nil, err
	}
	if doc.Status != flow.StatusEnRevision {
		return nil, fmt.Errorf("document %s is %s, expected %s: %w", doc.ID, doc.Status, flow.StatusEnRevision, ErrInvalidState)
	}
	if err := s.gate.CheckReviewer(doc, actor); err != nil {
		return nil, err
	}
	if err := s.gate.CheckSequence(doc); err != nil {
		return nil, err
	}

	updated, err := s.transition(doc, flow.StatusAceptado, actor, "approve")
	if err != nil {
		return nil, err
	}

	if err := s.sync.DocumentAccepted(doc.StudentID, doc.Type); err != nil {
		return nil, fmt.Errorf("failed to sync practice progress for student %s: %w", doc.StudentID, err)
	}
	return updated, nil
}

// Reject moves an EnRevision document into Rechazado. No sequencing check:
// rejecting never skips ahead.
func (s *DocumentService) Reject(documentID uuid.UUID, actor Actor) (*models.Document, error) {
	doc, err := s.getActiveDocument(documentID)
	if err != nil {
		return nil, err
	}
	if doc.Status != flow.StatusEnRevision {
		return nil, fmt.Errorf("document %s is %s, expected %s: %w", doc.ID, doc.Status, flow.StatusEnRevision, ErrInvalidState)
	}
	if err := s.gate.CheckReviewer(doc, actor); err != nil {
		return nil, err
	}
	return s.transition(doc, flow.StatusRechazado, actor, "reject")
}

// Remove soft-deletes the caller's own Pendiente or Rechazado document. The
// row update is authoritative; a failed remote rename is logged and never
// blocks the deletion.
func (s *DocumentService) Remove(documentID uuid.UUID, actor Actor) (*models.Document, error) {
	doc, err := s.getActiveDocument(documentID)
	if err != nil {
		return nil, err
	}
	if err := s.gate.CheckOwner(doc, actor); err != nil {
		return nil, err
	}
	if doc.Status != flow.StatusPendiente && doc.Status != flow.StatusRechazado {
		return nil, fmt.Errorf("document %s is %s, only %s or %s can be removed: %w",
			doc.ID, doc.Status, flow.StatusPendiente, flow.StatusRechazado, ErrInvalidState)
	}

	newName, err := flow.ReplaceStatusToken(doc.FileName, flow.StatusEliminado)
	if err != nil {
		return nil, err
	}
	newPath, err := flow.ReplacePathName(doc.FilePath, doc.FileName, newName)
	if err != nil {
		return nil, err
	}

	if err := s.documents.SoftDeleteDocument(doc.ID, newName, newPath); err != nil {
		return nil, err
	}

	if err := s.files.Rename(doc.FilePath, newPath); err != nil {
		log.Printf("Warning: best-effort rename of removed document %s failed (%s -> %s): %v",
			doc.ID, doc.FilePath, newPath, err)
	}

	oldName := doc.FileName
	doc.Status = flow.StatusEliminado
	doc.FileName = newName
	doc.FilePath = newPath
	doc.Deleted = true

	s.recordAudit("remove", actor, doc, fmt.Sprintf("removed %s (%s)", doc.Type, oldName))
	return doc, nil
}

// UploadNext stores the next required document for a student as a new row.
// Students upload for themselves and get a Pendiente document; an admin
// uploading a pre-approved system document on the student's behalf creates
// it directly as Aceptado.
func (s *DocumentService) UploadNext(actor Actor, studentID uuid.UUID, data []byte) (*models.Document, error) {
	if actor.Role != RoleAdmin {
		if actor.ID != studentID {
			return nil, fmt.Errorf("actor %s may only upload their own documents: %w", actor.ID, ErrUnauthorized)
		}
	}

	student, err := s.students.GetStudent(studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, fmt.Errorf("student %s: %w", studentID, ErrNotFound)
	}

	accepted, err := s.documents.ListAcceptedTypes(studentID)
	if err != nil {
		return nil, err
	}
	next, ok := flow.NextRequired(accepted)
	if !ok {
		return nil, fmt.Errorf("all documents complete for student %s: %w", studentID, ErrFlowComplete)
	}

	// CartaAceptacion couples the document flow to the application pipeline:
	// the presentation letter must already be accepted and the student must
	// hold a pre-accepted application.
	if next == flow.CartaAceptacion {
		if !accepted[flow.CartaPresentacion] {
			return nil, &OutOfOrderError{Type: next, Missing: []flow.DocumentType{flow.CartaPresentacion}}
		}
		has, err := s.applications.HasPreacceptedApplication(studentID)
		if err != nil {
			return nil, err
		}
		if !has {
			return nil, fmt.Errorf("student %s has no pre-accepted application: %w", studentID, ErrInvalidState)
		}
	}

	initialStatus := flow.StatusPendiente
	if actor.Role == RoleAdmin {
		initialStatus = flow.StatusAceptado
	}

	disambiguator := strings.SplitN(uuid.New().String(), "-", 2)[0]
	fileName := flow.BuildFileName(next, initialStatus, student.Number, disambiguator)
	remotePath := s.files.DocumentPath(student.Number, fileName)

	if err := s.files.Store(remotePath, data); err != nil {
		return nil, fmt.Errorf("failed to store document file: %w", err)
	}

	doc := &models.Document{
		ID:        uuid.New(),
		StudentID: studentID,
		Type:      next,
		FileName:  fileName,
		FilePath:  remotePath,
		Status:    initialStatus,
	}
	if err := s.documents.InsertDocument(doc); err != nil {
		// The two stores cannot share a transaction; compensate by deleting
		// the file just written.
		if delErr := s.files.Delete(remotePath); delErr != nil {
			log.Printf("Warning: rollback delete of %s failed: %v", remotePath, delErr)
		}
		return nil, err
	}

	s.recordAudit("upload", actor, doc, fmt.Sprintf("uploaded %s as %s", doc.Type, initialStatus))

	if initialStatus == flow.StatusAceptado {
		if err := s.sync.DocumentAccepted(studentID, next); err != nil {
			return nil, fmt.Errorf("failed to sync practice progress for student %s: %w", studentID, err)
		}
	}
	return doc, nil
}

// ListDocuments returns a student's active documents, optionally filtered by
// status. Students see only their own; assessors and admins see any.
func (s *DocumentService) ListDocuments(actor Actor, studentID uuid.UUID, status flow.Status) ([]models.Document, error) {
	if actor.Role == RoleStudent && actor.ID != studentID {
		return nil, fmt.Errorf("actor %s may only list their own documents: %w", actor.ID, ErrUnauthorized)
	}
	return s.documents.ListDocumentsByStudent(studentID, status)
}

func (s *DocumentService) getActiveDocument(id uuid.UUID) (*models.Document, error) {
	doc, err := s.documents.GetDocumentByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("document %s: %w", id, ErrNotFound)
	}
	return doc, nil
}

// transition renames the stored file for the new status, then persists the
// row with a conditional update re-checking the prior status. A rename that
// lands without the row update is a hard StorageInconsistencyError.
func (s *DocumentService) transition(doc *models.Document, next flow.Status, actor Actor, action string) (*models.Document, error) {
	newName, err := flow.ReplaceStatusToken(doc.FileName, next)
	if err != nil {
		return nil, err
	}
	newPath, err := flow.ReplacePathName(doc.FilePath, doc.FileName, newName)
	if err != nil {
		return nil, err
	}

	if err := s.files.Rename(doc.FilePath, newPath); err != nil {
		return nil, fmt.Errorf("failed to rename document file: %w", err)
	}

	affected, err := s.documents.UpdateDocumentStatusAndFile(doc.ID, next, newName, newPath, doc.Status)
	if err != nil || affected == 0 {
		incErr := &StorageInconsistencyError{OldPath: doc.FilePath, NewPath: newPath, Err: err}
		log.Printf("Error: %v", incErr)
		return nil, incErr
	}

	prev := doc.Status
	doc.Status = next
	doc.FileName = newName
	doc.FilePath = newPath

	s.recordAudit(action, actor, doc, fmt.Sprintf("%s: %s -> %s", doc.Type, prev, next))
	return doc, nil
}

func (s *DocumentService) recordAudit(action string, actor Actor, doc *models.Document, details string) {
	rec := &models.AuditRecord{
		TableName:  "documents",
		Action:     action,
		UserID:     actor.ID,
		UserRole:   actor.Role,
		Details:    details,
		DocumentID: doc.ID,
		StudentID:  doc.StudentID,
	}
	if err := s.audit.InsertAuditRecord(rec); err != nil {
		log.Printf("Warning: audit record for %s on document %s failed: %v", action, doc.ID, err)
	}
}
