package domain

import (
	"context"
	"time"
)

// Job is a recruiter-authored posting. Postings are never edited.
type Job struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Department   string    `json:"department"`
	Requirements string    `json:"requirements"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	// Fetch returns every posting, newest first.
	Fetch(ctx context.Context) ([]Job, error)
}

type JobUsecase interface {
	CreateJobPosting(ctx context.Context, title, company, department, requirements, description string) (*Job, error)
	ListJobPostings(ctx context.Context) ([]Job, error)
	GetJobPosting(ctx context.Context, id int64) (*Job, error)
}
