package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/atesyeri/somine-cms-backend/controllers/cms/project_controller"
	"github.com/atesyeri/somine-cms-backend/middleware"
)

func SetupProjectRoutes(api *gin.RouterGroup) {
	projects := api.Group("/projects")
	{
		projects.GET("", project_controller.GetProjects)
		projects.GET("/:id", project_controller.GetProjectByID)

		protected := projects.Group("")
		protected.Use(middleware.AdminAuthMiddleware())
		{
			protected.POST("", project_controller.CreateProject)
			protected.PUT("/:id", project_controller.UpdateProject)
			protected.DELETE("/:id", project_controller.DeleteProject)
		}
	}
}
