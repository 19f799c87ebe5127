package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/AbhiDwived/VMR-Solution-Backend/config"
	"github.com/AbhiDwived/VMR-Solution-Backend/middleware"
	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/AbhiDwived/VMR-Solution-Backend/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OTPRequest carries an identity (email or mobile) and a submitted code.
type OTPRequest struct {
	EmailOrMobile string `json:"email_or_mobile" binding:"required"`
	OTP           string `json:"otp" binding:"required"`
}

// IdentityRequest carries just an identity, for issuance endpoints.
type IdentityRequest struct {
	EmailOrMobile string `json:"email_or_mobile" binding:"required"`
}

// issueChallenge regenerates the user's OTP challenge, persists it, and
// fires the notification when the identity resolves to an email address.
// Notification failure is logged and swallowed.
func issueChallenge(user *models.User, send func(to, otp string) error) error {
	code, expiry, err := utils.NewOTPChallenge()
	if err != nil {
		return err
	}

	if err := config.DB.Model(user).Updates(map[string]interface{}{
		"otp":        code,
		"otp_expiry": expiry,
	}).Error; err != nil {
		return err
	}

	if strings.Contains(user.Email, "@") {
		if err := send(user.Email, code); err != nil {
			utils.LogError("Failed to send OTP to %s: %v", user.Email, err)
		}
	}
	return nil
}

// consumeChallenge finds the user by identity, compares the submitted
// code in constant time, checks expiry, and clears the challenge marking
// the user verified. An unknown identity and a wrong code deliberately
// report the same error.
func consumeChallenge(identity, code string) (*models.User, error) {
	var user models.User
	err := config.DB.Where("email = ? OR mobile = ?", identity, identity).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrInvalidCode
		}
		return nil, err
	}

	if !utils.OTPMatches(user.OTP, code) {
		return nil, utils.ErrInvalidCode
	}
	if utils.OTPExpired(user.OTPExpiry, time.Now()) {
		return nil, utils.ErrExpired
	}

	if err := config.DB.Model(&user).Updates(map[string]interface{}{
		"is_verified": true,
		"otp":         nil,
		"otp_expiry":  nil,
	}).Error; err != nil {
		return nil, err
	}
	user.IsVerified = true
	user.OTP = nil
	user.OTPExpiry = nil

	return &user, nil
}

// issueSession mints a token and mirrors it into the session cookie.
func issueSession(c *gin.Context, user *models.User) (string, error) {
	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", err
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionTokenKey, token)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to persist session cookie for user %d: %v", user.ID, err)
	}
	return token, nil
}

// VerifyOTP confirms a registration challenge and logs the user in.
func VerifyOTP(c *gin.Context) {
	var req OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Email/Mobile and OTP are required", err.Error())
		return
	}

	user, err := consumeChallenge(req.EmailOrMobile, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidCode):
			utils.BadRequest(c, "Invalid OTP", nil)
		case errors.Is(err, utils.ErrExpired):
			utils.BadRequest(c, "OTP has expired", nil)
		default:
			utils.LogError("OTP verification failed for %s: %v", req.EmailOrMobile, err)
			utils.InternalServerError(c, "Failed to verify OTP", nil)
		}
		return
	}

	token, err := issueSession(c, user)
	if err != nil {
		utils.LogError("Token generation failed for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("User %d verified via OTP", user.ID)
	utils.Success(c, "Email verified successfully", gin.H{
		"token": token,
		"user":  user.PublicProfile(),
	})
}

// ResendOTP issues a fresh registration challenge for an existing user.
func ResendOTP(c *gin.Context) {
	var req IdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Email or Mobile is required", err.Error())
		return
	}

	user, err := findUserByIdentity(req.EmailOrMobile)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.NotFound(c, "User not found")
			return
		}
		utils.LogError("Resend OTP lookup failed for %s: %v", req.EmailOrMobile, err)
		utils.InternalServerError(c, "Failed to resend OTP", nil)
		return
	}

	if err := issueChallenge(user, utils.SendOTP); err != nil {
		utils.LogError("Resend OTP failed for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to resend OTP", nil)
		return
	}

	utils.Success(c, "OTP resent successfully", nil)
}

// SendLoginOTP issues a challenge for password-less login.
func SendLoginOTP(c *gin.Context) {
	var req IdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Email or Mobile is required", err.Error())
		return
	}

	user, err := findUserByIdentity(req.EmailOrMobile)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.NotFound(c, "User not found. Please register first.")
			return
		}
		utils.LogError("Send login OTP lookup failed for %s: %v", req.EmailOrMobile, err)
		utils.InternalServerError(c, "Failed to send login OTP", nil)
		return
	}

	if err := issueChallenge(user, utils.SendLoginOTP); err != nil {
		utils.LogError("Send login OTP failed for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to send login OTP", nil)
		return
	}

	utils.Success(c, "Login OTP sent successfully", nil)
}

// VerifyLoginOTP consumes a login challenge and mints a session token.
func VerifyLoginOTP(c *gin.Context) {
	var req OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Email/Mobile and OTP are required", err.Error())
		return
	}

	user, err := consumeChallenge(req.EmailOrMobile, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidCode):
			utils.BadRequest(c, "Invalid OTP", nil)
		case errors.Is(err, utils.ErrExpired):
			utils.BadRequest(c, "OTP has expired", nil)
		default:
			utils.LogError("Login OTP verification failed for %s: %v", req.EmailOrMobile, err)
			utils.InternalServerError(c, "Failed to verify OTP", nil)
		}
		return
	}

	token, err := issueSession(c, user)
	if err != nil {
		utils.LogError("Token generation failed for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("User %d logged in via OTP", user.ID)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user":  user.PublicProfile(),
	})
}
