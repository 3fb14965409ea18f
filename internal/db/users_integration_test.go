//go:build integration

package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmail() string {
	return fmt.Sprintf("test-%d@integration.example.com", time.Now().UnixNano())
}

func TestIntegration_User_CreateAndGet(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	email := testEmail()
	user, err := db.CreateUser(ctx, "Integration Tester", email, "not-a-real-hash")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, email, user.Email)
	assert.True(t, user.PasswordSet)

	byID, err := db.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, user.Email, byID.Email)
	assert.Equal(t, "not-a-real-hash", byID.PasswordHash)

	// Email lookup is case-insensitive via stored lowercasing.
	byEmail, err := db.GetUserByEmail(ctx, email)
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestIntegration_User_CheckEmailExists(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	email := testEmail()
	exists, err := db.CheckEmailExists(ctx, email)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = db.CreateUser(ctx, "Integration Tester", email, "hash")
	require.NoError(t, err)

	exists, err = db.CheckEmailExists(ctx, email)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestIntegration_User_UpdatePassword(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	user, err := db.CreateUser(ctx, "Integration Tester", testEmail(), "old-hash")
	require.NoError(t, err)

	require.NoError(t, db.UpdatePassword(ctx, user.ID, "new-hash"))

	updated, err := db.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "new-hash", updated.PasswordHash)

	err = db.UpdatePassword(ctx, uuid.New(), "new-hash")
	assert.Error(t, err)
}
