package cms_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/atesyeri/somine-cms-backend/controllers/cms/admin_controller/auth"
	"github.com/atesyeri/somine-cms-backend/middleware"
)

// SetupAdminRoutes wires the admin session endpoints. Login is rate limited
// per IP to slow credential stuffing; logout stays public so a client with an
// expired session can still clear its cookie.
func SetupAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin")
	{
		admin.POST("/login", middleware.RateLimiter(10, time.Minute), auth.AdminLogin)
		admin.POST("/logout", auth.AdminLogout)

		admin.GET("/me", middleware.AdminAuthMiddleware(), auth.GetAdminMe)
	}
}
