package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User represents a registered shop user
type User struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Exclude from JSON
	DateOfBirth  string    `json:"date_of_birth"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserProfile is the projection of a user handed to callers outside the
// user directory. It never carries the stored credential.
type UserProfile struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	DateOfBirth string    `json:"date_of_birth"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewUser creates a new user with an already-derived password hash
func NewUser(firstName, lastName, email, passwordHash, dateOfBirth string) (*User, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	return &User{
		ID:           uuid.New(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: passwordHash,
		DateOfBirth:  dateOfBirth,
		CreatedAt:    time.Now(),
	}, nil
}

// Profile returns the credential-free projection of the user
func (u *User) Profile() *UserProfile {
	return &UserProfile{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		DateOfBirth: u.DateOfBirth,
		CreatedAt:   u.CreatedAt,
	}
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
