package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"shop-service/app/domain"
	"shop-service/app/port"
	"shop-service/app/rest/middleware"
	apperrors "shop-service/app/utils/errors"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase port.AuthUsecase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger,
	}
}

// RegisterRequest is the registration form payload
type RegisterRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	DateOfBirth     string `json:"date_of_birth"`
}

// LoginRequest is the login form payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token and user for API clients
type LoginResponse struct {
	Token string              `json:"token"`
	User  *domain.UserProfile `json:"user"`
}

// Register handles new user registration
// @Summary Register a new user
// @Description Validate the registration form and create the user
// @Tags authentication
// @Accept json
// @Produce json
// @Success 201 {object} domain.UserProfile
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" ||
		req.Password == "" || req.ConfirmPassword == "" || req.DateOfBirth == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "All fields are required."})
	}
	if req.Password != req.ConfirmPassword {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Passwords do not match."})
	}

	profile, err := h.authUsecase.Register(c.Request().Context(), &domain.RegisterRequest{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, profile)
}

// Login authenticates credentials and establishes both a session cookie
// and a bearer token
// @Summary Log in
// @Description Authenticate and receive a bearer token plus session cookie
// @Tags authentication
// @Accept json
// @Produce json
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email is required."})
	}
	if req.Password == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Password is required."})
	}

	result, err := h.authUsecase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	h.setSessionCookie(c, result.Session)

	return c.JSON(http.StatusOK, LoginResponse{
		Token: result.Token,
		User:  result.User,
	})
}

// Logout discards the session and clears the cookie
// @Summary Log out
// @Tags authentication
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.authUsecase.Logout(c.Request().Context(), cookie.Value); err != nil {
			h.logger.Error("logout failed", "error", err)
			return respondError(c, err)
		}
	}

	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, MessageResponse{Message: "Logged out"})
}

// Me returns the authenticated caller's profile
// @Summary Current user
// @Tags authentication
// @Produce json
// @Success 200 {object} domain.UserProfile
// @Failure 401 {object} ErrorResponse
// @Router /v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return respondError(c, apperrors.NewUnauthorized("no authenticated user"))
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) setSessionCookie(c echo.Context, session *domain.Session) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
