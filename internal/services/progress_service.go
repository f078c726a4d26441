package services

import (
	"fmt"

	"github.com/google/uuid"

	"practicas-backend/internal/flow"
)

// ProgressService derives the two displayable progress views for a student.
// Both are pure projections over already-stored state.
type ProgressService struct {
	documents    DocumentStore
	practices    PracticeStore
	applications ApplicationStore
}

func NewProgressService(documents DocumentStore, practices PracticeStore, applications ApplicationStore) *ProgressService {
	return &ProgressService{documents: documents, practices: practices, applications: applications}
}

// milestoneLabels maps the stored progress step through the coarse 0-4
// milestone scale surfaced to advisors.
var milestoneLabels = map[int]string{
	0: "Not started",
	1: "Report I approved",
	2: "Report II approved",
	3: "Final report approved",
	4: "Practice finished",
}

const milestoneUnknown = "Unknown"

type MilestoneProgress struct {
	Step  int
	Label string
}

// MilestoneProgress reads the active practice's stored step and maps it
// through the milestone table. Steps outside the table label as "Unknown".
func (s *ProgressService) MilestoneProgress(studentID uuid.UUID) (*MilestoneProgress, error) {
	practice, err := s.practices.GetActivePracticeByStudentID(studentID)
	if err != nil {
		return nil, err
	}
	if practice == nil {
		return nil, fmt.Errorf("active practice for student %s: %w", studentID, ErrNotFound)
	}

	label, ok := milestoneLabels[practice.ProgressStep]
	if !ok {
		label = milestoneUnknown
	}
	return &MilestoneProgress{Step: practice.ProgressStep, Label: label}, nil
}

type PercentageProgress struct {
	Percentage       int
	CanStartPractice bool
	PracticeStarted  bool
}

const practicePhasePoints = 20

// PercentageProgress scores the post-acceptance phase: each accepted
// practice-phase type is worth a fixed 20 points, max 100. It also reports
// whether the practice could start (all four letters accepted plus a
// pre-accepted application) and whether it already has.
func (s *ProgressService) PercentageProgress(studentID uuid.UUID) (*PercentageProgress, error) {
	accepted, err := s.documents.ListAcceptedTypes(studentID)
	if err != nil {
		return nil, err
	}

	percentage := 0
	for _, t := range flow.PracticePhaseTypes() {
		if accepted[t] {
			percentage += practicePhasePoints
		}
	}

	canStart := true
	for _, t := range flow.PrePracticeLetters() {
		if !accepted[t] {
			canStart = false
			break
		}
	}
	if canStart {
		has, err := s.applications.HasPreacceptedApplication(studentID)
		if err != nil {
			return nil, err
		}
		canStart = has
	}

	practice, err := s.practices.GetActivePracticeByStudentID(studentID)
	if err != nil {
		return nil, err
	}
	started := practice != nil && practice.ProgressStep >= flow.PracticeStartedStep

	return &PercentageProgress{
		Percentage:       percentage,
		CanStartPractice: canStart,
		PracticeStarted:  started,
	}, nil
}
