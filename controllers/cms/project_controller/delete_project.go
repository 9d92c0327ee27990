package project_controller

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/models"
	"github.com/atesyeri/somine-cms-backend/services"
)

// DeleteProject godoc
// @Summary Delete a project
// @Description Hard delete. A home-page selection pointing at this id is simply filtered out at read time
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/projects/{id} [delete]
func DeleteProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Geçersiz proje ID'si."))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var project models.Project
	if err := config.Gorm.WithContext(ctx).
		Select("id, image").
		First(&project, "id = ?", projectID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Proje bulunamadı."))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Proje getirilirken bir hata oluştu."))
		}
		return
	}

	if err := config.Gorm.WithContext(ctx).Delete(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Proje silinirken bir hata oluştu."))
		return
	}

	if project.Image != "" && services.GetCloudinaryService() != nil {
		go func(projID uuid.UUID) {
			folderPath := fmt.Sprintf("somine/projects/%s", projID.String())

			deleteCtx, deleteCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer deleteCancel()

			if err := services.GetCloudinaryService().DeleteFolder(deleteCtx, folderPath); err != nil {
				fmt.Printf("⚠️  Warning: Failed to delete Cloudinary folder %s: %v\n", folderPath, err)
			}
		}(projectID)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, map[string]string{
		"message": "Proje başarıyla silindi.",
		"id":      projectID.String(),
	}))
}
