package domain

import (
	"context"
	"time"
)

// ApplicationStatus is the recruiter's decision. Any value may follow any other.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "Pending"
	ApplicationStatusHired    ApplicationStatus = "Hired"
	ApplicationStatusNotHired ApplicationStatus = "Not Hired"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusHired, ApplicationStatusNotHired:
		return true
	}
	return false
}

// Application is one stored submission of a resume against a posting.
type Application struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"user_id"`
	JobID     int64             `json:"job_id"`
	Resume    []byte            `json:"-"`
	AppliedAt time.Time         `json:"applied_at"`
	Status    ApplicationStatus `json:"status"`
}

// ApplicationView is an application joined with its candidate and posting.
type ApplicationView struct {
	ID                int64             `json:"id"`
	CandidateUsername string            `json:"candidate_username"`
	JobTitle          string            `json:"job_title"`
	AppliedAt         time.Time         `json:"applied_at"`
	Resume            []byte            `json:"-"`
	Company           string            `json:"company"`
	Requirements      string            `json:"requirements"`
	Status            ApplicationStatus `json:"status"`
}

// Label is how a recruiter picks an application out of a list.
func (a ApplicationView) Label() string {
	return a.CandidateUsername + " - " + a.JobTitle
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*ApplicationView, error)
	// Fetch returns every application joined with candidate and job, newest first.
	Fetch(ctx context.Context) ([]ApplicationView, error)
	UpdateStatus(ctx context.Context, id int64, status ApplicationStatus) error
}

type ApplicationUsecase interface {
	SubmitApplication(ctx context.Context, userID, jobID int64, resume []byte) (*Application, error)
	ListApplications(ctx context.Context) ([]ApplicationView, error)
	GetApplication(ctx context.Context, id int64) (*ApplicationView, error)
	UpdateStatus(ctx context.Context, id int64, status ApplicationStatus) error
	// ExportApplications renders the joined list as an xlsx workbook.
	ExportApplications(ctx context.Context) ([]byte, string, error)
}
