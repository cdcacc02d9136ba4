package usecase

import (
	"context"
	"errors"
	"recruitai-backend/internal/domain"
	"recruitai-backend/pkg/apperror"
	"time"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) CreateJobPosting(ctx context.Context, title, company, department, requirements, description string) (*domain.Job, error) {
	job := &domain.Job{
		Title:        title,
		Company:      company,
		Department:   department,
		Requirements: requirements,
		Description:  description,
		CreatedAt:    time.Now(),
	}
	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, storageFailure("create_job", err)
	}
	return job, nil
}

// ListJobPostings returns an empty slice, not nil, when nothing is posted.
func (u *jobUsecase) ListJobPostings(ctx context.Context) ([]domain.Job, error) {
	jobs, err := u.jobRepo.Fetch(ctx)
	if err != nil {
		return nil, storageFailure("list_jobs", err)
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs, nil
}

func (u *jobUsecase) GetJobPosting(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Wrap(apperror.NotFound("Job not found"), err)
		}
		return nil, storageFailure("get_job", err)
	}
	return job, nil
}
