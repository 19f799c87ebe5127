package middleware

import (
	"strings"

	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/AbhiDwived/VMR-Solution-Backend/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionTokenKey is where the session cookie fallback stores the token.
const SessionTokenKey = "token"

// extractToken pulls the token from the Authorization header, falling
// back to the session cookie.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	session := sessions.Default(c)
	if token, ok := session.Get(SessionTokenKey).(string); ok {
		return token
	}
	return ""
}

// AuthMiddleware verifies the session token and stores the principal in
// the request context. The token alone is trusted; there is no per-request
// user lookup and no revocation, so a role change rides out the token's
// remaining validity.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			utils.LogError("Missing token on %s %s", c.Request.Method, c.Request.URL.Path)
			utils.Unauthorized(c, "No token, authorization denied")
			c.Abort()
			return
		}

		userID, role, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.LogError("Invalid token: %v", err)
			utils.Unauthorized(c, "Token is not valid")
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

// RequireRoles rejects principals whose role is not in the allowed set.
// Must run after AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		if !utils.AuthorizeRole(role.(string), roles...) {
			utils.LogError("Role %v denied access to %s", role, c.Request.URL.Path)
			utils.Forbidden(c, "Access denied. Required role: "+strings.Join(roles, " or "))
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminMiddleware restricts a route to administrators.
func AdminMiddleware() gin.HandlerFunc {
	return RequireRoles(models.RoleAdmin)
}

// CurrentUserID returns the authenticated user's id from the context.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
