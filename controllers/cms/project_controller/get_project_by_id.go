package project_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/models"
)

// GetProjectByID godoc
// @Summary Get a project by ID
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/projects/{id} [get]
func GetProjectByID(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Geçersiz proje ID'si."))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var project models.Project
	if err := config.Gorm.WithContext(ctx).
		First(&project, "id = ?", projectID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Proje bulunamadı."))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Proje getirilirken bir hata oluştu."))
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, project))
}
