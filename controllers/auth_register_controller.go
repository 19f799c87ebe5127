package controllers

import (
	"errors"
	"strings"

	"github.com/AbhiDwived/VMR-Solution-Backend/config"
	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/AbhiDwived/VMR-Solution-Backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// findUserByIdentity looks up a user by email or mobile.
func findUserByIdentity(identity string) (*models.User, error) {
	var user models.User
	err := config.DB.Where("email = ? OR mobile = ?", identity, identity).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// RegisterUser creates an unverified user with a pending OTP challenge and
// sends the code by email. Email delivery is best-effort; a send failure
// does not undo the registration.
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Registration failed - invalid request format: %v", err)
		utils.BadRequest(c, "All fields are required", err.Error())
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Mobile = strings.TrimSpace(req.Mobile)

	if valid, msg := utils.ValidateName(req.FullName); !valid {
		utils.BadRequest(c, "Invalid full name", msg)
		return
	}
	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.BadRequest(c, "Invalid email", msg)
		return
	}
	if valid, msg := utils.ValidateMobile(req.Mobile); !valid {
		utils.BadRequest(c, "Invalid mobile", msg)
		return
	}
	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ? OR mobile = ?", req.Email, req.Mobile).First(&existing).Error; err == nil {
		utils.LogError("Registration rejected - duplicate identity: %s", req.Email)
		utils.Conflict(c, "User with this email or mobile already exists", nil)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Registration failed - hashing error: %v", err)
		utils.InternalServerError(c, "Failed to register user", nil)
		return
	}

	code, expiry, err := utils.NewOTPChallenge()
	if err != nil {
		utils.LogError("Registration failed - OTP generation error: %v", err)
		utils.InternalServerError(c, "Failed to register user", nil)
		return
	}

	user := models.User{
		FullName:  req.FullName,
		Email:     req.Email,
		Mobile:    req.Mobile,
		Password:  hashed,
		Role:      models.RoleUser,
		OTP:       &code,
		OTPExpiry: &expiry,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		// Concurrent registration can slip past the pre-check; the unique
		// index still reports it as a conflict, not a server fault.
		if utils.IsDuplicateKey(err) {
			utils.LogError("Registration rejected - duplicate identity: %s", req.Email)
			utils.Conflict(c, "User with this email or mobile already exists", nil)
			return
		}
		utils.LogError("Registration failed - insert error for %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to register user", nil)
		return
	}

	// Best effort; the challenge stays valid even if the mail bounces.
	if err := utils.SendOTP(user.Email, code); err != nil {
		utils.LogError("Failed to send registration OTP to %s: %v", user.Email, err)
	} else {
		utils.LogInfo("Registration OTP sent to %s", user.Email)
	}

	utils.Created(c, "User registered successfully. Please check your email for OTP.", gin.H{
		"user_id": user.ID,
	})
}
