package models

import "time"

type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

type DocumentResponse struct {
	ID        string    `json:"document_id"`
	StudentID string    `json:"student_id"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	FileName  string    `json:"file_name"`
	FilePath  string    `json:"file_path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
}

type UploadResponse struct {
	Document DocumentResponse `json:"document"`
	Size     int64            `json:"size"`
}

type MilestoneProgressResponse struct {
	StudentID string `json:"student_id"`
	Step      int    `json:"step"`
	Label     string `json:"label"`
}

type PercentageProgressResponse struct {
	StudentID        string `json:"student_id"`
	Percentage       int    `json:"percentage"`
	CanStartPractice bool   `json:"can_start_practice"`
	PracticeStarted  bool   `json:"practice_started"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
