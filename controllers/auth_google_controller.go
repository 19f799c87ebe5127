package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/AbhiDwived/VMR-Solution-Backend/config"
	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/AbhiDwived/VMR-Solution-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// GoogleLogin redirects the browser to the Google consent screen.
func GoogleLogin(c *gin.Context) {
	if config.GoogleOAuthConfig == nil || config.GoogleOAuthConfig.ClientID == "" {
		utils.InternalServerError(c, "Google sign-in is not configured", nil)
		return
	}
	url := config.GoogleOAuthConfig.AuthCodeURL("state")
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback exchanges the authorization code, provisions a verified
// user on first sign-in, and mints a session token.
func GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		utils.BadRequest(c, "No code provided", nil)
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(c, code)
	if err != nil {
		utils.InternalServerError(c, "Failed to exchange token", err.Error())
		return
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		utils.InternalServerError(c, "Failed to get user info", err.Error())
		return
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.InternalServerError(c, "Failed to read response", err.Error())
		return
	}

	var info GoogleUserInfo
	if err := json.Unmarshal(data, &info); err != nil {
		utils.InternalServerError(c, "Failed to parse user info", err.Error())
		return
	}

	if info.Email == "" || !info.VerifiedEmail {
		utils.BadRequest(c, "Google account has no verified email", nil)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", info.Email).First(&user).Error; err != nil {
		// First sign-in: provision a verified account. The random password
		// keeps the password login path closed until a reset.
		randomPassword, hashErr := utils.HashPassword(uuid.New().String())
		if hashErr != nil {
			utils.InternalServerError(c, "Failed to create user", nil)
			return
		}
		user = models.User{
			FullName:   info.Name,
			Email:      info.Email,
			Mobile:     fmt.Sprintf("g-%s", info.ID),
			Password:   randomPassword,
			Role:       models.RoleUser,
			IsVerified: true,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			utils.LogError("Google sign-in provisioning failed for %s: %v", info.Email, err)
			utils.InternalServerError(c, "Failed to create user", nil)
			return
		}
		utils.LogInfo("Provisioned user %d via Google sign-in", user.ID)
	}

	sessionToken, err := issueSession(c, &user)
	if err != nil {
		utils.LogError("Token generation failed for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.Success(c, "Login successful", gin.H{
		"token": sessionToken,
		"user":  user.PublicProfile(),
	})
}
