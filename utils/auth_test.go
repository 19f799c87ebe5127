package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("S3curePass")
	require.NoError(t, err)
	assert.NotEqual(t, "S3curePass", hash)

	assert.True(t, CheckPassword("S3curePass", hash))
	assert.False(t, CheckPassword("wrongpass", hash))
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, "admin", role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, _, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken(7, "user")
	require.NoError(t, err)

	_, _, err = ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestAuthorizeRole(t *testing.T) {
	assert.True(t, AuthorizeRole("admin", "admin"))
	assert.True(t, AuthorizeRole("user", "user", "admin"))
	assert.False(t, AuthorizeRole("user", "admin"))
	assert.False(t, AuthorizeRole("", "user", "admin"))
}
