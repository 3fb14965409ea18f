package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/staffing-optimizer/internal/db"
	"github.com/jonathan/staffing-optimizer/internal/server/middleware"
	"github.com/jonathan/staffing-optimizer/internal/types"
)

// AuthHandler exposes the registration, login, and password endpoints.
type AuthHandler struct {
	users *UserService
	jwt   *JWTService
}

// NewAuthHandler creates an auth handler backed by the given services.
func NewAuthHandler(users *UserService, jwt *JWTService) *AuthHandler {
	return &AuthHandler{users: users, jwt: jwt}
}

// HandleRegister creates a new account and returns a token for it.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req types.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := req.Validate(); err != nil {
		validationErrorResponse(w, err)
		return
	}

	user, err := h.users.Register(r.Context(), &req)
	if err != nil {
		log.Printf("register failed for %s: %v", req.Email, err)
		errorResponse(w, HTTPStatus(err), userFacingMessage(err))
		return
	}

	token, err := h.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		log.Printf("token generation failed for %s: %v", user.ID, err)
		errorResponse(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	jsonResponse(w, http.StatusCreated, types.LoginResponse{
		Token: token,
		User:  userResponse(user),
	})
}

// HandleLogin authenticates an account and returns a token.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := req.Validate(); err != nil {
		validationErrorResponse(w, err)
		return
	}

	user, err := h.users.Authenticate(r.Context(), &req)
	if err != nil {
		errorResponse(w, HTTPStatus(err), userFacingMessage(err))
		return
	}

	token, err := h.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		log.Printf("token generation failed for %s: %v", user.ID, err)
		errorResponse(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	jsonResponse(w, http.StatusOK, types.LoginResponse{
		Token: token,
		User:  userResponse(user),
	})
}

// HandleUpdatePassword changes the password for the authenticated user.
func (h *AuthHandler) HandleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req types.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := req.Validate(); err != nil {
		validationErrorResponse(w, err)
		return
	}

	if err := h.users.UpdatePassword(r.Context(), userID, &req); err != nil {
		log.Printf("password update failed for %s: %v", userID, err)
		errorResponse(w, HTTPStatus(err), userFacingMessage(err))
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"status": "password updated"})
}

// userResponse strips the user row down to its public fields.
func userResponse(u *db.User) types.UserResponse {
	return types.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// userFacingMessage returns an error message safe to expose to clients.
// Internal failures collapse to a generic message.
func userFacingMessage(err error) string {
	switch {
	case errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrPasswordMismatch),
		errors.Is(err, ErrPersistenceDisabled):
		return err.Error()
	default:
		return "internal server error"
	}
}

// validationErrorResponse writes a 400 with per-field detail when the error
// came from struct validation.
func validationErrorResponse(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fmt.Sprintf("failed on %q", fe.Tag())
		}
		jsonResponse(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": fields,
		})
		return
	}
	errorResponse(w, http.StatusBadRequest, err.Error())
}
