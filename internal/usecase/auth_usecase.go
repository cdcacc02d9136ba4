package usecase

import (
	"context"
	"errors"
	"recruitai-backend/internal/domain"
	"recruitai-backend/pkg/apperror"
	"recruitai-backend/pkg/logger"
	"recruitai-backend/pkg/security"
)

type authUsecase struct {
	userRepo domain.UserRepository
}

func NewAuthUsecase(userRepo domain.UserRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

// Register stores a new account. Uniqueness is decided by the insert itself.
func (u *authUsecase) Register(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, apperror.BadRequest("Role must be Candidate or HR/Recruiter")
	}

	user := &domain.User{
		Username: username,
		Password: security.HashPassword(password),
		Role:     role,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, apperror.Wrap(apperror.Conflict("Username already exists"), err)
		}
		return nil, storageFailure("register", err)
	}

	logger.Log.Info("User registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Authenticate never says which of username or password was wrong.
func (u *authUsecase) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := u.userRepo.GetByCredentials(ctx, username, security.HashPassword(password))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Wrap(apperror.Unauthorized("Invalid credentials"), domain.ErrInvalidCredentials)
		}
		return nil, storageFailure("authenticate", err)
	}
	return user, nil
}

func (u *authUsecase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Wrap(apperror.NotFound("User not found"), err)
		}
		return nil, storageFailure("get_user", err)
	}
	return user, nil
}
