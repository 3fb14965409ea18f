package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateUserRequest_Validate(t *testing.T) {
	valid := CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "password123"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		req  CreateUserRequest
	}{
		{"missing name", CreateUserRequest{Email: "ada@example.com", Password: "password123"}},
		{"bad email", CreateUserRequest{Name: "Ada", Email: "not-an-email", Password: "password123"}},
		{"short password", CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.req.Validate())
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	valid := LoginRequest{Email: "ada@example.com", Password: "anything"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&LoginRequest{Password: "anything"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "ada@example.com"}).Validate())
}

func TestUpdatePasswordRequest_Validate(t *testing.T) {
	valid := UpdatePasswordRequest{CurrentPassword: "old-password", NewPassword: "new-password-123"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&UpdatePasswordRequest{NewPassword: "new-password-123"}).Validate())
	assert.Error(t, (&UpdatePasswordRequest{CurrentPassword: "old", NewPassword: "short"}).Validate())
}
