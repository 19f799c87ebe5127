package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"
)

// OTPValidity is how long an issued challenge can be redeemed.
const OTPValidity = 10 * time.Minute

// GenerateOTP returns a uniformly random 6-digit numeric code. Leading
// zeros are kept, so the code is always exactly six characters.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %v", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// NewOTPChallenge generates a fresh code with its expiry timestamp.
func NewOTPChallenge() (code string, expiry time.Time, err error) {
	code, err = GenerateOTP()
	if err != nil {
		return "", time.Time{}, err
	}
	return code, time.Now().Add(OTPValidity), nil
}

// OTPMatches compares a submitted code against the stored one in
// constant time. A cleared challenge never matches.
func OTPMatches(stored *string, submitted string) bool {
	if stored == nil || submitted == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(*stored), []byte(submitted)) == 1
}

// OTPExpired reports whether the stored expiry has passed. A missing
// expiry counts as expired.
func OTPExpired(expiry *time.Time, now time.Time) bool {
	return expiry == nil || now.After(*expiry)
}
