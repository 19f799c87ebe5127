package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)

	routes := map[string]bool{}
	for _, r := range SetupRouter().Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	return routes
}

func TestSetupRouterRegistersPublicRoutes(t *testing.T) {
	routes := registeredRoutes(t)

	for _, route := range []string{
		"POST /api/auth/register",
		"POST /api/auth/verify-otp",
		"POST /api/coupons/validate",
		"POST /api/coupons/apply",
		"POST /api/contact",
		"POST /api/bulk-orders",
		"POST /api/subscribe",
		"GET /api/products",
		"GET /api/blogs/:slug",
	} {
		assert.True(t, routes[route], route)
	}
}

func TestSetupRouterRegistersAdminRoutes(t *testing.T) {
	routes := registeredRoutes(t)

	for _, route := range []string{
		"GET /api/admin/dashboard",
		"GET /api/admin/inventory/stats",
		"GET /api/admin/inventory/low-stock",
		"GET /api/admin/bulk-orders",
		"PATCH /api/admin/bulk-orders/:id/status",
		"GET /api/admin/subscriptions",
		"DELETE /api/admin/subscriptions/:id",
		"GET /api/admin/coupons/report",
		"PATCH /api/admin/orders/:id/status",
	} {
		assert.True(t, routes[route], route)
	}
}
