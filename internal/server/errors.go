package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/staffing-optimizer/internal/optimizer"
)

// Sentinel errors for authentication and user management.
var (
	// ErrEmailAlreadyExists is returned when registering with an email that is taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login fails.
	// Covers both unknown email and wrong password so responses stay uniform.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when a user lookup finds nothing.
	ErrUserNotFound = errors.New("user not found")

	// ErrPasswordMismatch is returned when the current password check fails
	// during a password update.
	ErrPasswordMismatch = errors.New("current password is incorrect")

	// ErrPersistenceDisabled is returned by analysis endpoints when the server
	// was started without a database.
	ErrPersistenceDisabled = errors.New("persistence is not configured")
)

// ValidationError wraps request validation failures with field detail.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// HTTPStatus maps an error to the HTTP status code the handler should return.
func HTTPStatus(err error) int {
	var validationErr *ValidationError
	var requirementErr *optimizer.InvalidRequirementError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &requirementErr):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrPasswordMismatch):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmailAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrPersistenceDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
