package usecase

import (
	"context"
	"errors"
	"recruitai-backend/internal/domain"
	"recruitai-backend/pkg/apperror"
	"recruitai-backend/pkg/logger"
)

type screeningUsecase struct {
	applicationRepo domain.ApplicationRepository
	screener        domain.Screener
}

func NewScreeningUsecase(appRepo domain.ApplicationRepository, screener domain.Screener) domain.ScreeningUsecase {
	return &screeningUsecase{applicationRepo: appRepo, screener: screener}
}

// ScreenApplication scores one application against its posting's requirements.
// The verdict is returned to the caller only.
func (uc *screeningUsecase) ScreenApplication(ctx context.Context, applicationID int64) (*domain.ScreeningReport, error) {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Wrap(apperror.NotFound("Application not found"), err)
		}
		return nil, storageFailure("screen_application", err)
	}

	result, err := uc.screener.ScoreCandidate(ctx, app.Resume, app.Requirements)
	if err != nil {
		logger.Log.Error("Screening failed", "application_id", applicationID, "error", err)
		return nil, apperror.Internal(err)
	}

	return &domain.ScreeningReport{
		ApplicationID: app.ID,
		Label:         app.Label(),
		Result:        result,
	}, nil
}
