package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPFormat(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.Regexp(t, `^[0-9]{6}$`, code)
	}
}

func TestNewOTPChallengeExpiry(t *testing.T) {
	before := time.Now()
	code, expiry, err := NewOTPChallenge()
	require.NoError(t, err)

	assert.Len(t, code, 6)
	assert.WithinDuration(t, before.Add(OTPValidity), expiry, 2*time.Second)
}

func TestOTPMatches(t *testing.T) {
	code := "042317"

	assert.True(t, OTPMatches(&code, "042317"))
	assert.False(t, OTPMatches(&code, "042318"))
	assert.False(t, OTPMatches(&code, ""))
	assert.False(t, OTPMatches(nil, "042317"), "a cleared challenge never matches")
}

func TestOTPExpired(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Minute)
	past := now.Add(-time.Minute)

	assert.False(t, OTPExpired(&future, now))
	assert.True(t, OTPExpired(&past, now))
	assert.True(t, OTPExpired(nil, now), "missing expiry counts as expired")
}
