package services_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"practicas-backend/internal/flow"
	"practicas-backend/internal/models"
)

// In-memory stand-ins for the store contracts. They mirror the real clients'
// semantics: lookups return nil for missing rows, and the conditional update
// re-checks the expected prior status.

type fakeDocumentStore struct {
	docs      map[uuid.UUID]*models.Document
	insertErr error
	updateErr error
	// forceZeroAffected makes the conditional update report no rows, as a
	// racing transition would.
	forceZeroAffected bool
}

func newFakeDocumentStore() *fakeDocumentStore {
	return &fakeDocumentStore{docs: make(map[uuid.UUID]*models.Document)}
}

func (f *fakeDocumentStore) InsertDocument(doc *models.Document) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = doc.CreatedAt
	clone := *doc
	f.docs[doc.ID] = &clone
	return nil
}

func (f *fakeDocumentStore) GetDocumentByID(id uuid.UUID) (*models.Document, error) {
	doc, ok := f.docs[id]
	if !ok || doc.Deleted {
		return nil, nil
	}
	clone := *doc
	return &clone, nil
}

func (f *fakeDocumentStore) ListDocumentsByStudent(studentID uuid.UUID, status flow.Status) ([]models.Document, error) {
	var out []models.Document
	for _, doc := range f.docs {
		if doc.StudentID != studentID || doc.Deleted {
			continue
		}
		if status != "" && doc.Status != status {
			continue
		}
		out = append(out, *doc)
	}
	return out, nil
}

func (f *fakeDocumentStore) ListAcceptedTypes(studentID uuid.UUID) (map[flow.DocumentType]bool, error) {
	accepted := make(map[flow.DocumentType]bool)
	for _, doc := range f.docs {
		if doc.StudentID == studentID && doc.Status == flow.StatusAceptado && !doc.Deleted {
			accepted[doc.Type] = true
		}
	}
	return accepted, nil
}

func (f *fakeDocumentStore) UpdateDocumentStatusAndFile(id uuid.UUID, newStatus flow.Status, fileName, filePath string, expectedPriorStatus flow.Status) (int64, error) {
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	if f.forceZeroAffected {
		return 0, nil
	}
	doc, ok := f.docs[id]
	if !ok || doc.Deleted || doc.Status != expectedPriorStatus {
		return 0, nil
	}
	doc.Status = newStatus
	doc.FileName = fileName
	doc.FilePath = filePath
	doc.UpdatedAt = time.Now()
	return 1, nil
}

func (f *fakeDocumentStore) SoftDeleteDocument(id uuid.UUID, fileName, filePath string) error {
	doc, ok := f.docs[id]
	if !ok || doc.Deleted {
		return nil
	}
	doc.Status = flow.StatusEliminado
	doc.FileName = fileName
	doc.FilePath = filePath
	doc.Deleted = true
	return nil
}

type fakeStudentDirectory struct {
	students map[uuid.UUID]*models.Student
}

func (f *fakeStudentDirectory) GetStudent(id uuid.UUID) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, nil
	}
	clone := *student
	return &clone, nil
}

type fakePracticeStore struct {
	practices map[uuid.UUID]*models.Practice // keyed by practice id
	setErr    error
}

func (f *fakePracticeStore) GetActivePracticeByStudentID(studentID uuid.UUID) (*models.Practice, error) {
	for _, p := range f.practices {
		if p.StudentID == studentID && p.Status == models.PracticeStarted && !p.Deleted {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakePracticeStore) SetPracticeProgressStep(practiceID uuid.UUID, step int) error {
	if f.setErr != nil {
		return f.setErr
	}
	if p, ok := f.practices[practiceID]; ok {
		p.ProgressStep = step
	}
	return nil
}

type fakeApplicationStore struct {
	preaccepted map[uuid.UUID]bool
}

func (f *fakeApplicationStore) HasPreacceptedApplication(studentID uuid.UUID) (bool, error) {
	return f.preaccepted[studentID], nil
}

type fakeAuditSink struct {
	records []models.AuditRecord
	err     error
}

func (f *fakeAuditSink) InsertAuditRecord(rec *models.AuditRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, *rec)
	return nil
}

type fakeFileRepository struct {
	files     map[string][]byte
	renames   [][2]string
	deletes   []string
	storeErr  error
	renameErr error
	deleteErr error
}

func newFakeFileRepository() *fakeFileRepository {
	return &fakeFileRepository{files: make(map[string][]byte)}
}

func (f *fakeFileRepository) Store(remotePath string, data []byte) error {
	if f.storeErr != nil {
		return f.storeErr
	}
	f.files[remotePath] = data
	return nil
}

func (f *fakeFileRepository) Rename(oldPath, newPath string) error {
	if f.renameErr != nil {
		return f.renameErr
	}
	data, ok := f.files[oldPath]
	if !ok {
		return errors.New("rename: source absent")
	}
	delete(f.files, oldPath)
	f.files[newPath] = data
	f.renames = append(f.renames, [2]string{oldPath, newPath})
	return nil
}

func (f *fakeFileRepository) Delete(remotePath string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.files, remotePath)
	f.deletes = append(f.deletes, remotePath)
	return nil
}

func (f *fakeFileRepository) DocumentPath(studentNumber, fileName string) string {
	return fmt.Sprintf("/practicas/%s/%s", studentNumber, fileName)
}
