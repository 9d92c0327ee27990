package project_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/models"
)

// GetProjects godoc
// @Summary List portfolio projects
// @Description Newest first. ?active=true limits the list to visible projects
// @Tags Projects
// @Produce json
// @Param active query bool false "Only active projects"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/projects [get]
func GetProjects(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.Gorm.WithContext(ctx).Order("created_at DESC")
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var projects []models.Project
	if err := query.Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Projeler getirilirken bir hata oluştu."))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, projects))
}
