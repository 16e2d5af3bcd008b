package handlers

import (
	"github.com/labstack/echo/v4"

	apperrors "shop-service/app/utils/errors"
)

// ErrorResponse represents an error response body
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// MessageResponse represents a simple outcome message
type MessageResponse struct {
	Message string `json:"message"`
}

// respondError maps an application error onto an HTTP response
func respondError(c echo.Context, err error) error {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return c.JSON(appErr.StatusCode, ErrorResponse{
			Error:   appErr.Message,
			Code:    string(appErr.Code),
			Details: appErr.Details,
		})
	}
	return c.JSON(apperrors.GetHTTPStatusCode(err), ErrorResponse{
		Error: "internal server error",
	})
}
