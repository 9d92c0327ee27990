package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/atesyeri/somine-cms-backend/controllers/cms/product_controller"
	"github.com/atesyeri/somine-cms-backend/middleware"
)

// SetupProductRoutes wires the product catalog. Reads are public, every
// mutation sits behind the admin session guard.
func SetupProductRoutes(api *gin.RouterGroup) {
	products := api.Group("/products")
	{
		products.GET("", product_controller.GetProducts)
		products.GET("/:id", product_controller.GetProductByID)

		protected := products.Group("")
		protected.Use(middleware.AdminAuthMiddleware())
		{
			protected.POST("", product_controller.CreateProduct)
			protected.PUT("/:id", product_controller.UpdateProduct)
			protected.DELETE("/:id", product_controller.DeleteProduct)
		}
	}
}
