package services

import (
	"github.com/google/uuid"

	"practicas-backend/internal/flow"
)

// PracticeStepSync pushes a practice's stored progress step forward when an
// accepted document type maps to one. The write is last-writer-wins; it does
// not compare against the current step.
type PracticeStepSync struct {
	practices PracticeStore
}

func NewPracticeStepSync(practices PracticeStore) *PracticeStepSync {
	return &PracticeStepSync{practices: practices}
}

// DocumentAccepted records the step implied by accepting t. Types outside
// the lookup and students without an active practice are no-ops.
func (s *PracticeStepSync) DocumentAccepted(studentID uuid.UUID, t flow.DocumentType) error {
	step, ok := flow.PracticeStepFor(t)
	if !ok {
		return nil
	}
	practice, err := s.practices.GetActivePracticeByStudentID(studentID)
	if err != nil {
		return err
	}
	if practice == nil {
		return nil
	}
	return s.practices.SetPracticeProgressStep(practice.ID, step)
}
