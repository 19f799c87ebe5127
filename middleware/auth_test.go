package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/AbhiDwived/VMR-Solution-Backend/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessions.Sessions("test", cookie.NewStore([]byte("test-secret"))))

	handlers := append([]gin.HandlerFunc{AuthMiddleware()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		userID, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	router.GET("/protected", handlers...)
	return router
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	w := doRequest(newTestRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestAuthMiddlewareMalformedToken(t *testing.T) {
	w := doRequest(newTestRouter(), "definitely-not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	token, err := utils.GenerateToken(42, models.RoleUser)
	require.NoError(t, err)

	w := doRequest(newTestRouter(), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestAdminMiddlewareRejectsUserRole(t *testing.T) {
	token, err := utils.GenerateToken(42, models.RoleUser)
	require.NoError(t, err)

	w := doRequest(newTestRouter(AdminMiddleware()), token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminMiddlewareAllowsAdminRole(t *testing.T) {
	token, err := utils.GenerateToken(1, models.RoleAdmin)
	require.NoError(t, err)

	w := doRequest(newTestRouter(AdminMiddleware()), token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRolesRejectsUnknownRole(t *testing.T) {
	token, err := utils.GenerateToken(3, "superuser")
	require.NoError(t, err)

	w := doRequest(newTestRouter(RequireRoles(models.RoleUser, models.RoleAdmin)), token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
