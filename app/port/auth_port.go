package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go

import (
	"context"

	"shop-service/app/domain"
)

// AuthUsecase defines authentication business logic interface
type AuthUsecase interface {
	// Registration and login
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.UserProfile, error)
	Login(ctx context.Context, email, password string) (*domain.LoginResult, error)
	Logout(ctx context.Context, sessionID string) error

	// Identity resolution for the auth gate
	ResolveSession(ctx context.Context, sessionID string) (*domain.UserProfile, error)
	ResolveToken(ctx context.Context, token string) (*domain.UserProfile, error)
}

// TokenService defines bearer token issuance and verification
type TokenService interface {
	// Issue mints a signed token whose subject is the user id
	Issue(userID string) (string, error)
	// Verify checks signature then expiry and returns the subject.
	// Expired and structurally invalid tokens fail with distinct errors.
	Verify(token string) (string, error)
}
