package services

import (
	"os"
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	require.NoError(t, os.Setenv("JWT_SECRET", "test-secret"))

	db := setupTestDB(t)

	user, err := RegisterUser("new@example.com", "s3cret", "New", "User")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", user.Password) // stored hashed

	token, err := AuthenticateUser("new@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = AuthenticateUser("new@example.com", "wrong")
	assert.Error(t, err)

	_, err = AuthenticateUser("missing@example.com", "s3cret")
	assert.Error(t, err)

	// disabled accounts cannot log in
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("disabled", true).Error)
	_, err = AuthenticateUser("new@example.com", "s3cret")
	assert.Error(t, err)
}
