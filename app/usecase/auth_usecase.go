package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"shop-service/app/domain"
	"shop-service/app/port"
	apperrors "shop-service/app/utils/errors"
	"shop-service/app/utils/validator"
)

// AuthUseCase implements registration, login and identity resolution
type AuthUseCase struct {
	userRepo    port.UserRepository
	sessionRepo port.SessionRepository
	tokens      port.TokenService
	sessionTTL  time.Duration
	logger      *slog.Logger
}

// NewAuthUseCase creates a new AuthUseCase instance
func NewAuthUseCase(
	userRepo port.UserRepository,
	sessionRepo port.SessionRepository,
	tokens port.TokenService,
	sessionTTL time.Duration,
	logger *slog.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

// Register validates the registration form, derives the credential hash
// and stores the new user. Validation failures report only the first
// failing field, in form order.
func (u *AuthUseCase) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.UserProfile, error) {
	if msg, ok := validateRegistration(req); !ok {
		return nil, apperrors.New(apperrors.ErrCodeValidationFailed, msg)
	}

	exists, err := u.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	if exists {
		return nil, apperrors.New(apperrors.ErrCodeUserExists, domain.ErrUserAlreadyExists.Error())
	}

	hash, err := domain.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user, err := domain.NewUser(req.FirstName, req.LastName, req.Email, hash, req.DateOfBirth)
	if err != nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, err.Error())
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		// The unique constraint is authoritative: a concurrent registration
		// for the same email loses here, not at the ExistsByEmail check.
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, apperrors.New(apperrors.ErrCodeUserExists, domain.ErrUserAlreadyExists.Error())
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	u.logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	return user.Profile(), nil
}

// Login authenticates the credentials and, on success, mints a bearer
// token and a server-side session mirroring it. Unknown email and wrong
// password fail with distinct messages.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeInvalidCredentials, domain.ErrIncorrectEmail.Error())
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	if !domain.VerifyPassword(user.PasswordHash, password) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidCredentials, domain.ErrIncorrectPassword.Error())
	}

	token, err := u.tokens.Issue(user.ID.String())
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	session, err := domain.NewSession(user.ID, token, u.sessionTTL)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if err := u.sessionRepo.Create(ctx, session); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	u.logger.Info("user logged in", "user_id", user.ID)
	return &domain.LoginResult{
		Token:   token,
		Session: session,
		User:    user.Profile(),
	}, nil
}

// Logout discards the session. Logging out an unknown session succeeds.
func (u *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if err := u.sessionRepo.Delete(ctx, sessionID); err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// ResolveSession maps a session id to the user it belongs to. Expired
// sessions and sessions pointing at deleted users are discarded and
// treated as unauthenticated.
func (u *AuthUseCase) ResolveSession(ctx context.Context, sessionID string) (*domain.UserProfile, error) {
	session, err := u.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeSessionNotFound, domain.ErrUnauthorized.Error())
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	if session.IsExpired() {
		if err := u.sessionRepo.Delete(ctx, session.ID); err != nil {
			u.logger.Error("failed to discard expired session", "error", err)
		}
		return nil, apperrors.New(apperrors.ErrCodeSessionNotFound, domain.ErrUnauthorized.Error())
	}

	user, err := u.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Stale session for a user that no longer exists.
			if derr := u.sessionRepo.Delete(ctx, session.ID); derr != nil {
				u.logger.Error("failed to discard stale session", "error", derr)
			}
			return nil, apperrors.New(apperrors.ErrCodeSessionNotFound, domain.ErrUnauthorized.Error())
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	return user.Profile(), nil
}

// ResolveToken verifies a bearer token and maps its subject to a user.
// Expiry and structural invalidity surface as distinct errors.
func (u *AuthUseCase) ResolveToken(ctx context.Context, token string) (*domain.UserProfile, error) {
	subject, err := u.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			return nil, apperrors.New(apperrors.ErrCodeTokenExpired, domain.ErrTokenExpired.Error())
		}
		return nil, apperrors.New(apperrors.ErrCodeInvalidToken, domain.ErrInvalidToken.Error())
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidToken, domain.ErrInvalidToken.Error())
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeInvalidToken, domain.ErrInvalidToken.Error())
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	return user.Profile(), nil
}

// validateRegistration checks the form fields in order and returns the
// first failure message
func validateRegistration(req *domain.RegisterRequest) (string, bool) {
	checks := []func() (bool, string){
		func() (bool, string) { return validator.ValidateName(req.FirstName) },
		func() (bool, string) { return validator.ValidateName(req.LastName) },
		func() (bool, string) { return validator.ValidateEmail(req.Email) },
		func() (bool, string) { return validator.ValidatePassword(req.Password) },
		func() (bool, string) { return validator.ValidateDateOfBirth(req.DateOfBirth) },
	}

	for _, check := range checks {
		if ok, msg := check(); !ok {
			return msg, false
		}
	}
	return "", true
}
