package project_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/models"
)

// CreateProject godoc
// @Summary Create a portfolio project
// @Description Requires a Turkish title and an image URL; isActive defaults to true
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body models.ProjectRequest true "Project details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/projects [post]
func CreateProject(c *gin.Context) {
	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Geçersiz istek: "+err.Error()))
		return
	}

	if req.Title.Tr == "" || req.Image == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Proje başlığı (tr) ve görsel zorunludur."))
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	project := models.Project{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Image:       req.Image,
		Date:        req.Date,
		IsActive:    isActive,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.Gorm.WithContext(ctx).Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Proje oluşturulurken bir hata oluştu."))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, project))
}
