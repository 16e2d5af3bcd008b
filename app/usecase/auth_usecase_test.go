package usecase

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"shop-service/app/domain"
	mock_port "shop-service/app/mocks"
	apperrors "shop-service/app/utils/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthUseCase(t *testing.T) (*AuthUseCase, *mock_port.MockUserRepository, *mock_port.MockSessionRepository, *mock_port.MockTokenService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	userRepo := mock_port.NewMockUserRepository(ctrl)
	sessionRepo := mock_port.NewMockSessionRepository(ctrl)
	tokens := mock_port.NewMockTokenService(ctrl)

	uc := NewAuthUseCase(userRepo, sessionRepo, tokens, 24*time.Hour, slog.Default())
	return uc, userRepo, sessionRepo, tokens
}

func validRegisterRequest() *domain.RegisterRequest {
	return &domain.RegisterRequest{
		FirstName:   "Jo",
		LastName:    "Doe",
		Email:       "jo@x.com",
		Password:    "Aa1!aaaa",
		DateOfBirth: "01/01/2000",
	}
}

func TestAuthUseCase_Register(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*domain.RegisterRequest)
		setupMocks func(*mock_port.MockUserRepository)
		wantMsg    string
	}{
		{
			name: "successful registration",
			setupMocks: func(userRepo *mock_port.MockUserRepository) {
				userRepo.EXPECT().ExistsByEmail(gomock.Any(), "jo@x.com").Return(false, nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "short first name fails first",
			mutate:  func(r *domain.RegisterRequest) { r.FirstName = "J" },
			wantMsg: "Name must be at least 2 characters long.",
		},
		{
			name:    "bad email",
			mutate:  func(r *domain.RegisterRequest) { r.Email = "not-an-email" },
			wantMsg: "Invalid email format.",
		},
		{
			name:    "weak password reports first failing rule",
			mutate:  func(r *domain.RegisterRequest) { r.Password = "aaaaaaaa" },
			wantMsg: "Password must include at least one uppercase letter.",
		},
		{
			name:    "impossible date",
			mutate:  func(r *domain.RegisterRequest) { r.DateOfBirth = "31/02/2000" },
			wantMsg: "Invalid date. Please use a valid date in format dd/mm/yyyy.",
		},
		{
			name: "duplicate email",
			setupMocks: func(userRepo *mock_port.MockUserRepository) {
				userRepo.EXPECT().ExistsByEmail(gomock.Any(), "jo@x.com").Return(true, nil)
			},
			wantMsg: "User already exists",
		},
		{
			name: "duplicate email lost race at insert",
			setupMocks: func(userRepo *mock_port.MockUserRepository) {
				userRepo.EXPECT().ExistsByEmail(gomock.Any(), "jo@x.com").Return(false, nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrUserAlreadyExists)
			},
			wantMsg: "User already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, userRepo, _, _ := newTestAuthUseCase(t)

			req := validRegisterRequest()
			if tt.mutate != nil {
				tt.mutate(req)
			}
			if tt.setupMocks != nil {
				tt.setupMocks(userRepo)
			}

			profile, err := uc.Register(context.Background(), req)

			if tt.wantMsg != "" {
				require.Error(t, err)
				appErr, ok := apperrors.AsAppError(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantMsg, appErr.Message)
				assert.Nil(t, profile)
			} else {
				require.NoError(t, err)
				require.NotNil(t, profile)
				assert.Equal(t, "jo@x.com", profile.Email)
				assert.NotEqual(t, uuid.Nil, profile.ID)
			}
		})
	}
}

func TestAuthUseCase_Login(t *testing.T) {
	hash, err := domain.HashPassword("Aa1!aaaa")
	require.NoError(t, err)
	user, err := domain.NewUser("Jo", "Doe", "jo@x.com", hash, "01/01/2000")
	require.NoError(t, err)

	t.Run("successful login mints token and session", func(t *testing.T) {
		uc, userRepo, sessionRepo, tokens := newTestAuthUseCase(t)

		userRepo.EXPECT().GetByEmail(gomock.Any(), "jo@x.com").Return(user, nil)
		tokens.EXPECT().Issue(user.ID.String()).Return("signed.bearer.token", nil)
		sessionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *domain.Session) error {
				assert.Equal(t, user.ID, s.UserID)
				assert.Equal(t, "signed.bearer.token", s.Token)
				assert.False(t, s.IsExpired())
				return nil
			})

		result, err := uc.Login(context.Background(), "jo@x.com", "Aa1!aaaa")

		require.NoError(t, err)
		assert.Equal(t, "signed.bearer.token", result.Token)
		assert.Equal(t, user.ID, result.User.ID)
		assert.NotNil(t, result.Session)
	})

	t.Run("unknown email fails with email message", func(t *testing.T) {
		uc, userRepo, _, _ := newTestAuthUseCase(t)

		userRepo.EXPECT().GetByEmail(gomock.Any(), "nope@x.com").Return(nil, domain.ErrUserNotFound)

		result, err := uc.Login(context.Background(), "nope@x.com", "Aa1!aaaa")

		require.Error(t, err)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "Incorrect email", appErr.Message)
		assert.Nil(t, result)
	})

	t.Run("wrong password fails with password message", func(t *testing.T) {
		uc, userRepo, _, _ := newTestAuthUseCase(t)

		userRepo.EXPECT().GetByEmail(gomock.Any(), "jo@x.com").Return(user, nil)

		result, err := uc.Login(context.Background(), "jo@x.com", "WrongPass1!")

		require.Error(t, err)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "Incorrect password", appErr.Message)
		assert.Nil(t, result)
	})
}

func TestAuthUseCase_Logout(t *testing.T) {
	uc, _, sessionRepo, _ := newTestAuthUseCase(t)

	sessionRepo.EXPECT().Delete(gomock.Any(), "session-id").Return(nil)

	assert.NoError(t, uc.Logout(context.Background(), "session-id"))
}

func TestAuthUseCase_ResolveSession(t *testing.T) {
	hash, err := domain.HashPassword("Aa1!aaaa")
	require.NoError(t, err)
	user, err := domain.NewUser("Jo", "Doe", "jo@x.com", hash, "01/01/2000")
	require.NoError(t, err)

	t.Run("valid session resolves to its user", func(t *testing.T) {
		uc, userRepo, sessionRepo, _ := newTestAuthUseCase(t)

		session, err := domain.NewSession(user.ID, "token", 24*time.Hour)
		require.NoError(t, err)

		sessionRepo.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)
		userRepo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

		profile, err := uc.ResolveSession(context.Background(), session.ID)

		require.NoError(t, err)
		assert.Equal(t, user.ID, profile.ID)
	})

	t.Run("unknown session is unauthenticated", func(t *testing.T) {
		uc, _, sessionRepo, _ := newTestAuthUseCase(t)

		sessionRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, domain.ErrSessionNotFound)

		profile, err := uc.ResolveSession(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeSessionNotFound, apperrors.GetErrorCode(err))
		assert.Nil(t, profile)
	})

	t.Run("expired session is discarded", func(t *testing.T) {
		uc, _, sessionRepo, _ := newTestAuthUseCase(t)

		session := &domain.Session{
			ID:        "expired-session",
			UserID:    user.ID,
			Token:     "token",
			CreatedAt: time.Now().Add(-48 * time.Hour),
			ExpiresAt: time.Now().Add(-24 * time.Hour),
		}

		sessionRepo.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)
		sessionRepo.EXPECT().Delete(gomock.Any(), session.ID).Return(nil)

		profile, err := uc.ResolveSession(context.Background(), session.ID)

		require.Error(t, err)
		assert.Nil(t, profile)
	})

	t.Run("session for deleted user is discarded", func(t *testing.T) {
		uc, userRepo, sessionRepo, _ := newTestAuthUseCase(t)

		session, err := domain.NewSession(user.ID, "token", 24*time.Hour)
		require.NoError(t, err)

		sessionRepo.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)
		userRepo.EXPECT().GetByID(gomock.Any(), user.ID).Return(nil, domain.ErrUserNotFound)
		sessionRepo.EXPECT().Delete(gomock.Any(), session.ID).Return(nil)

		profile, err := uc.ResolveSession(context.Background(), session.ID)

		require.Error(t, err)
		assert.Nil(t, profile)
	})
}

func TestAuthUseCase_ResolveToken(t *testing.T) {
	hash, err := domain.HashPassword("Aa1!aaaa")
	require.NoError(t, err)
	user, err := domain.NewUser("Jo", "Doe", "jo@x.com", hash, "01/01/2000")
	require.NoError(t, err)

	t.Run("valid token resolves to its subject", func(t *testing.T) {
		uc, userRepo, _, tokens := newTestAuthUseCase(t)

		tokens.EXPECT().Verify("good-token").Return(user.ID.String(), nil)
		userRepo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

		profile, err := uc.ResolveToken(context.Background(), "good-token")

		require.NoError(t, err)
		assert.Equal(t, user.ID, profile.ID)
	})

	t.Run("expired token reports expiry", func(t *testing.T) {
		uc, _, _, tokens := newTestAuthUseCase(t)

		tokens.EXPECT().Verify("stale-token").Return("", domain.ErrTokenExpired)

		profile, err := uc.ResolveToken(context.Background(), "stale-token")

		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeTokenExpired, apperrors.GetErrorCode(err))
		appErr, _ := apperrors.AsAppError(err)
		assert.Equal(t, "Token expired. Please log in again.", appErr.Message)
		assert.Nil(t, profile)
	})

	t.Run("garbage token reports invalidity", func(t *testing.T) {
		uc, _, _, tokens := newTestAuthUseCase(t)

		tokens.EXPECT().Verify("garbage").Return("", domain.ErrInvalidToken)

		profile, err := uc.ResolveToken(context.Background(), "garbage")

		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidToken, apperrors.GetErrorCode(err))
		appErr, _ := apperrors.AsAppError(err)
		assert.Equal(t, "Invalid token. Please log in again.", appErr.Message)
		assert.Nil(t, profile)
	})

	t.Run("token with non-uuid subject is invalid", func(t *testing.T) {
		uc, _, _, tokens := newTestAuthUseCase(t)

		tokens.EXPECT().Verify("odd-subject").Return("not-a-uuid", nil)

		profile, err := uc.ResolveToken(context.Background(), "odd-subject")

		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidToken, apperrors.GetErrorCode(err))
		assert.Nil(t, profile)
	})

	t.Run("token for deleted user is invalid", func(t *testing.T) {
		uc, userRepo, _, tokens := newTestAuthUseCase(t)

		tokens.EXPECT().Verify("orphan-token").Return(user.ID.String(), nil)
		userRepo.EXPECT().GetByID(gomock.Any(), user.ID).Return(nil, domain.ErrUserNotFound)

		profile, err := uc.ResolveToken(context.Background(), "orphan-token")

		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidToken, apperrors.GetErrorCode(err))
		assert.Nil(t, profile)
	})
}
