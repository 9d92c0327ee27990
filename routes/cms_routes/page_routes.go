package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/atesyeri/somine-cms-backend/controllers/cms/page_controller"
	"github.com/atesyeri/somine-cms-backend/middleware"
)

func SetupPageRoutes(api *gin.RouterGroup) {
	pages := api.Group("/pages")
	{
		pages.GET("/:pageId", page_controller.GetPage)

		pages.PUT("/:pageId", middleware.AdminAuthMiddleware(), page_controller.UpdatePage)
	}
}
