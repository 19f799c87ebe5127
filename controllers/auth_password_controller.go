package controllers

import (
	"errors"
	"time"

	"github.com/AbhiDwived/VMR-Solution-Backend/config"
	"github.com/AbhiDwived/VMR-Solution-Backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ResetPasswordRequest represents the reset request body
type ResetPasswordRequest struct {
	EmailOrMobile string `json:"email_or_mobile" binding:"required"`
	OTP           string `json:"otp" binding:"required"`
	NewPassword   string `json:"new_password" binding:"required"`
}

// ForgotPassword issues a password reset challenge.
func ForgotPassword(c *gin.Context) {
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
		utils.LogError("Forgot password lookup failed for %s: %v", req.EmailOrMobile, err)
		utils.InternalServerError(c, "Failed to send reset OTP", nil)
		return
	}

	if err := issueChallenge(user, utils.SendPasswordResetOTP); err != nil {
		utils.LogError("Forgot password challenge failed for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to send reset OTP", nil)
		return
	}

	utils.Success(c, "Reset OTP sent to your registered email/mobile", nil)
}

// ResetPassword consumes a reset challenge and replaces the password.
// Unlike login verification this does not mark the user verified and
// does not mint a token; the user logs in again afterwards.
func ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "All fields are required", err.Error())
		return
	}

	if valid, msg := utils.ValidatePassword(req.NewPassword); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}

	var user struct {
		ID        uint
		OTP       *string
		OTPExpiry *time.Time
	}
	err := config.DB.Table("users").
		Select("id", "otp", "otp_expiry").
		Where("email = ? OR mobile = ?", req.EmailOrMobile, req.EmailOrMobile).
		Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.BadRequest(c, "Invalid or expired OTP", nil)
			return
		}
		utils.LogError("Reset password lookup failed for %s: %v", req.EmailOrMobile, err)
		utils.InternalServerError(c, "Failed to reset password", nil)
		return
	}

	if !utils.OTPMatches(user.OTP, req.OTP) {
		utils.BadRequest(c, "Invalid or expired OTP", nil)
		return
	}
	if utils.OTPExpired(user.OTPExpiry, time.Now()) {
		utils.BadRequest(c, "OTP has expired", nil)
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		utils.LogError("Reset password hashing failed for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to reset password", nil)
		return
	}

	if err := config.DB.Table("users").Where("id = ?", user.ID).Updates(map[string]interface{}{
		"password":   hashed,
		"otp":        nil,
		"otp_expiry": nil,
	}).Error; err != nil {
		utils.LogError("Reset password update failed for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to reset password", nil)
		return
	}

	utils.LogInfo("Password reset for user %d", user.ID)
	utils.Success(c, "Password reset successful. Please login with your new password.", nil)
}
