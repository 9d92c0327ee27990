package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/atesyeri/somine-cms-backend/controllers/cms/upload_controller"
	"github.com/atesyeri/somine-cms-backend/middleware"
)

func SetupUploadRoutes(api *gin.RouterGroup) {
	api.POST("/admin/uploads", middleware.AdminAuthMiddleware(), upload_controller.UploadImages)
}
