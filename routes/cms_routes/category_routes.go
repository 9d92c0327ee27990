package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/atesyeri/somine-cms-backend/controllers/cms/category_controller"
	"github.com/atesyeri/somine-cms-backend/middleware"
)

func SetupCategoryRoutes(api *gin.RouterGroup) {
	categories := api.Group("/categories")
	{
		categories.GET("", category_controller.GetCategories)
		categories.GET("/:id", category_controller.GetCategoryByID)

		protected := categories.Group("")
		protected.Use(middleware.AdminAuthMiddleware())
		{
			protected.POST("", category_controller.CreateCategory)
			protected.PUT("/:id", category_controller.UpdateCategory)
			protected.DELETE("/:id", category_controller.DeleteCategory)
		}
	}
}
