package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/staffing-optimizer/internal/config"
	"github.com/jonathan/staffing-optimizer/internal/db"
	"github.com/jonathan/staffing-optimizer/internal/types"
)

// userStore is the subset of database operations the user service needs.
// Defined as an interface so unit tests can run without a database.
type userStore interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*db.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// UserService implements account registration, login, and password updates.
type UserService struct {
	store    userStore
	password *config.PasswordConfig
}

// NewUserService creates a user service backed by the given store.
func NewUserService(store userStore, passwordCfg *config.PasswordConfig) *UserService {
	return &UserService{store: store, password: passwordCfg}
}

// Register creates a new account after checking the email is free.
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*db.User, error) {
	exists, err := s.store.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := s.password.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, req.Name, req.Email, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Authenticate verifies credentials and returns the matching user.
// Unknown email and wrong password both return ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, req *types.LoginRequest) (*db.User, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !user.PasswordSet {
		return nil, ErrInvalidCredentials
	}

	if !s.password.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// UpdatePassword changes the password for an authenticated user after
// verifying the current password.
func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, req *types.UpdatePasswordRequest) error {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if !user.PasswordSet || !s.password.VerifyPassword(req.CurrentPassword, user.PasswordHash) {
		return ErrPasswordMismatch
	}

	hash, err := s.password.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.store.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
