package usecase

import (
	"context"
	"errors"
	"recruitai-backend/internal/domain"
	"recruitai-backend/pkg/apperror"
	"recruitai-backend/pkg/logger"
	"time"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	now             func() time.Time
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(appRepo domain.ApplicationRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		now:             time.Now,
	}
}

// SubmitApplication stores the resume bytes untouched. The same candidate may
// apply to the same job more than once.
func (uc *applicationUsecase) SubmitApplication(ctx context.Context, userID, jobID int64, resume []byte) (*domain.Application, error) {
	app := &domain.Application{
		UserID:    userID,
		JobID:     jobID,
		Resume:    resume,
		AppliedAt: uc.now(),
		Status:    domain.ApplicationStatusPending,
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrReferenceNotFound) {
			return nil, apperror.Wrap(apperror.NotFound("Job or candidate not found"), err)
		}
		return nil, storageFailure("submit_application", err)
	}

	logger.Log.Info("Application submitted", "application_id", app.ID, "job_id", jobID, "resume_bytes", len(resume))
	return app, nil
}

func (uc *applicationUsecase) ListApplications(ctx context.Context) ([]domain.ApplicationView, error) {
	apps, err := uc.applicationRepo.Fetch(ctx)
	if err != nil {
		return nil, storageFailure("list_applications", err)
	}
	if apps == nil {
		apps = []domain.ApplicationView{}
	}
	return apps, nil
}

func (uc *applicationUsecase) GetApplication(ctx context.Context, id int64) (*domain.ApplicationView, error) {
	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Wrap(apperror.NotFound("Application not found"), err)
		}
		return nil, storageFailure("get_application", err)
	}
	return app, nil
}

// UpdateStatus has no transition guard: any status may replace any other.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	if !status.Valid() {
		return apperror.Wrap(apperror.BadRequest("Invalid status. Must be: Pending, Hired, or Not Hired"), domain.ErrInvalidStatus)
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.Wrap(apperror.NotFound("Application not found"), err)
		}
		return storageFailure("update_status", err)
	}

	logger.Log.Info("Application status updated", "application_id", id, "status", status)
	return nil
}
