package controllers

import (
	"errors"

	"github.com/AbhiDwived/VMR-Solution-Backend/config"
	"github.com/AbhiDwived/VMR-Solution-Backend/middleware"
	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/AbhiDwived/VMR-Solution-Backend/utils"
	"github.com/gin-gonic/gin"
)

// LoginRequest represents the password login request body
type LoginRequest struct {
	EmailOrMobile string `json:"email_or_mobile" binding:"required"`
	Password      string `json:"password" binding:"required"`
}

// LoginUser authenticates with a password and mints a session token.
// Unknown identity and wrong password read the same to the caller.
func LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Please provide email/mobile and password", err.Error())
		return
	}

	user, err := findUserByIdentity(req.EmailOrMobile)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.BadRequest(c, "Invalid credentials", nil)
			return
		}
		utils.LogError("Login lookup failed for %s: %v", req.EmailOrMobile, err)
		utils.InternalServerError(c, "Failed to log in", nil)
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Login failed - wrong password for user %d", user.ID)
		utils.BadRequest(c, "Invalid credentials", nil)
		return
	}

	token, err := issueSession(c, user)
	if err != nil {
		utils.LogError("Token generation failed for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("User %d logged in", user.ID)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user":  user.PublicProfile(),
	})
}

// GetProfile returns the authenticated user's profile.
func GetProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.NotFound(c, "User not found")
		return
	}

	utils.Success(c, "Profile retrieved successfully", gin.H{"user": user.PublicProfile()})
}
