package domain

import "errors"

// Authentication and registration errors
var (
	ErrUserAlreadyExists = errors.New("User already exists")
	ErrIncorrectEmail    = errors.New("Incorrect email")
	ErrIncorrectPassword = errors.New("Incorrect password")
	ErrUserNotFound      = errors.New("user not found")
)

// Token errors. Expiry and structural failure are distinct reasons and
// callers must be able to tell them apart.
var (
	ErrTokenExpired = errors.New("Token expired. Please log in again.")
	ErrInvalidToken = errors.New("Invalid token. Please log in again.")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// Catalog and basket errors
var (
	ErrItemNotFound       = errors.New("Item not found")
	ErrItemAlreadyExists  = errors.New("item already exists")
	ErrBasketLineNotFound = errors.New("basket line not found")
)

// Authorization errors
var (
	ErrUnauthorized = errors.New("Authentication required")
)
