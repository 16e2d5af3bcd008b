package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"shop-service/app/domain"
	"shop-service/app/port"
	apperrors "shop-service/app/utils/errors"
)

const (
	// SessionCookieName is the cookie carrying the server-side session id
	SessionCookieName = "shop_session"

	// ContextUserKey is the echo context key holding the resolved identity
	ContextUserKey = "current_user"

	// LoginPath is where unauthenticated browser clients are sent
	LoginPath = "/v1/auth/login"
)

// AuthMiddleware gates routes behind an authenticated identity. A request
// may authenticate with a session cookie or a bearer token; the session
// is consulted first, matching how browser clients behave.
type AuthMiddleware struct {
	authUsecase port.AuthUsecase
	logger      *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		logger:      logger,
	}
}

// RequireAuth resolves the caller's identity or rejects the request.
// API clients (Accept: application/json) get a 401 JSON body; browser
// clients are redirected to the login page.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			// Session cookie first
			if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				user, err := m.authUsecase.ResolveSession(ctx, cookie.Value)
				if err != nil {
					m.logger.Debug("session resolution failed", "error", err)
					m.clearSessionCookie(c)
					return m.reject(c, domain.ErrUnauthorized.Error())
				}
				c.Set(ContextUserKey, user)
				return next(c)
			}

			// Then a bearer token, raw or scheme-prefixed
			if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
				user, err := m.authUsecase.ResolveToken(ctx, extractBearerToken(header))
				if err != nil {
					m.logger.Debug("token resolution failed", "error", err)
					return c.JSON(http.StatusUnauthorized, map[string]string{"message": authFailureMessage(err)})
				}
				c.Set(ContextUserKey, user)
				return next(c)
			}

			return m.reject(c, domain.ErrUnauthorized.Error())
		}
	}
}

// reject answers an unauthenticated request: JSON for API clients,
// a redirect to the login page for browsers.
func (m *AuthMiddleware) reject(c echo.Context, message string) error {
	if wantsJSON(c) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": message})
	}
	return c.Redirect(http.StatusFound, LoginPath)
}

func (m *AuthMiddleware) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// extractBearerToken accepts both "Bearer <token>" and a bare token
func extractBearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return header
}

// wantsJSON reports whether the caller asked for a JSON response
func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

// authFailureMessage surfaces the token failure reason to the caller;
// expiry and structural invalidity read differently.
func authFailureMessage(err error) string {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr.Message
	}
	return err.Error()
}

// CurrentUser returns the identity resolved by RequireAuth, or nil
func CurrentUser(c echo.Context) *domain.UserProfile {
	user, _ := c.Get(ContextUserKey).(*domain.UserProfile)
	return user
}
