package services

import (
	"fmt"

	"github.com/google/uuid"

	"practicas-backend/internal/flow"
	"practicas-backend/internal/models"
)

// Actor is the authenticated caller of an operation, as resolved by the auth
// middleware from the token's sub and role claims.
type Actor struct {
	ID   uuid.UUID
	Role string
}

const (
	RoleStudent  = "student"
	RoleAssessor = "assessor"
	RoleAdmin    = "admin"
)

// Capabilities is what an actor may do to one specific document.
type Capabilities struct {
	IsOwner            bool
	IsAssignedAssessor bool
	IsAdmin            bool
}

// ApprovalGate centralizes the ownership, reviewer and sequencing checks that
// guard every lifecycle transition. Checks re-read current state on every
// call; nothing is cached between requests.
type ApprovalGate struct {
	students  StudentDirectory
	documents DocumentStore
}

func NewApprovalGate(students StudentDirectory, documents DocumentStore) *ApprovalGate {
	return &ApprovalGate{students: students, documents: documents}
}

func (g *ApprovalGate) CapabilitiesFor(doc *models.Document, actor Actor) (Capabilities, error) {
	caps := Capabilities{
		IsOwner: actor.ID == doc.StudentID,
		IsAdmin: actor.Role == RoleAdmin,
	}
	if actor.Role == RoleAssessor {
		student, err := g.students.GetStudent(doc.StudentID)
		if err != nil {
			return Capabilities{}, err
		}
		caps.IsAssignedAssessor = student != nil && student.AssessorID == actor.ID
	}
	return caps, nil
}

// CheckOwner allows only the owning student. Admins do not submit or remove
// on a student's behalf.
func (g *ApprovalGate) CheckOwner(doc *models.Document, actor Actor) error {
	caps, err := g.CapabilitiesFor(doc, actor)
	if err != nil {
		return err
	}
	if !caps.IsOwner {
		return fmt.Errorf("actor %s does not own document %s: %w", actor.ID, doc.ID, ErrUnauthorized)
	}
	return nil
}

// CheckReviewer allows the internal assessor assigned to the document's
// owning student, or an admin.
func (g *ApprovalGate) CheckReviewer(doc *models.Document, actor Actor) error {
	caps, err := g.CapabilitiesFor(doc, actor)
	if err != nil {
		return err
	}
	if !caps.IsAdmin && !caps.IsAssignedAssessor {
		return fmt.Errorf("actor %s is not assigned to student %s: %w", actor.ID, doc.StudentID, ErrUnauthorized)
	}
	return nil
}

// CheckSequence verifies every type strictly before the document's type is
// currently accepted for its owner.
func (g *ApprovalGate) CheckSequence(doc *models.Document) error {
	accepted, err := g.documents.ListAcceptedTypes(doc.StudentID)
	if err != nil {
		return err
	}
	var missing []flow.DocumentType
	for _, t := range flow.RequiredPredecessors(doc.Type) {
		if !accepted[t] {
			missing = append(missing, t)
		}
	}
	if len(missing) > 0 {
		return &OutOfOrderError{Type: doc.Type, Missing: missing}
	}
	return nil
}
