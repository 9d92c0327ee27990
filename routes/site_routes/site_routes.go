package site_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/atesyeri/somine-cms-backend/controllers/site/home_controller"
	"github.com/atesyeri/somine-cms-backend/controllers/site/reviews_controller"
)

// SetupSiteRoutes wires the public endpoints the storefront consumes
// directly. Everything here is read only.
func SetupSiteRoutes(api *gin.RouterGroup) {
	api.GET("/home-content", home_controller.GetHomeContent)
	api.GET("/reviews", reviews_controller.GetReviews)
}
