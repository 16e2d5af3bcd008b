package domain

// RegisterRequest carries the raw registration form input. Password
// confirmation is checked by the caller before the request reaches the
// user directory.
type RegisterRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Password    string `json:"password" validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
}

// LoginResult is the outcome of a successful authentication: a bearer
// token for API clients and a server-side session for browser clients.
type LoginResult struct {
	Token   string       `json:"token"`
	Session *Session     `json:"-"`
	User    *UserProfile `json:"user"`
}
