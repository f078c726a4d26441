package models

import (
	"time"

	"github.com/google/uuid"
)

// Practice statuses. A practice row is soft-deleted, never removed.
const (
	PracticeStarted   = "started"
	PracticeFinished  = "finished"
	PracticeCancelled = "cancelled"
)

type Practice struct {
	ID           uuid.UUID `json:"id"`
	StudentID    uuid.UUID `json:"student_id"`
	CompanyID    uuid.UUID `json:"company_id"`
	AssessorID   uuid.UUID `json:"assessor_id"`
	Status       string    `json:"status"`
	ProgressStep int       `json:"progress_step"`
	Deleted      bool      `json:"deleted"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
