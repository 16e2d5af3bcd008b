package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"shop-service/app/domain"
	"shop-service/app/port"
	apperrors "shop-service/app/utils/errors"
)

// UserUseCase implements user directory lookups
type UserUseCase struct {
	userRepo port.UserRepository
	logger   *slog.Logger
}

// NewUserUseCase creates a new UserUseCase instance
func NewUserUseCase(userRepo port.UserRepository, logger *slog.Logger) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile returns the credential-free projection of a user
func (u *UserUseCase) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeUserNotFound, "User not found")
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	return user.Profile(), nil
}
