package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, IsDuplicateKey(errors.New(`duplicate key value violates unique constraint "idx_users_email"`)))
	assert.True(t, IsDuplicateKey(errors.New("UNIQUE constraint failed: users.email")))

	assert.False(t, IsDuplicateKey(nil))
	assert.False(t, IsDuplicateKey(errors.New("connection refused")))
	assert.False(t, IsDuplicateKey(errors.New("record not found")))
}
