package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/atesyeri/somine-cms-backend/controllers/cms/settings_controller"
	"github.com/atesyeri/somine-cms-backend/middleware"
)

func SetupSettingsRoutes(api *gin.RouterGroup) {
	settings := api.Group("/site-settings")
	{
		settings.GET("", settings_controller.GetSettings)

		settings.PUT("", middleware.AdminAuthMiddleware(), settings_controller.UpdateSettings)
	}
}
