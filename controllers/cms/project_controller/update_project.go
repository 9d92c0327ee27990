package project_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/models"
)

// UpdateProject godoc
// @Summary Update a project
// @Description Partial update; only the supplied fields change
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param project body models.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/projects/{id} [put]
func UpdateProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Geçersiz proje ID'si."))
		return
	}

	var input models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Geçersiz istek: "+err.Error()))
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

	updates := make(map[string]interface{})
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.Image != nil {
		updates["image"] = *input.Image
	}
	if input.Date != nil {
		updates["date"] = *input.Date
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Güncellenecek alan bulunamadı."))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&project).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Proje güncellenirken bir hata oluştu."))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		First(&project, "id = ?", projectID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Proje güncellenirken bir hata oluştu."))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, project))
}
