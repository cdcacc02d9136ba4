package usecase

import (
	"recruitai-backend/pkg/apperror"
	"recruitai-backend/pkg/logger"
)

// storageFailure logs an unexpected storage error once and hides it behind a
// generic internal error.
func storageFailure(op string, err error) error {
	logger.Log.Error("Storage operation failed", "op", op, "error", err)
	return apperror.Internal(err)
}
