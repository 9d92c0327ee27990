package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	content_cache "github.com/atesyeri/somine-cms-backend/cache"
	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/models"
)

// UpdateCategory godoc
// @Summary Update a category
// @Description Partial update; only the supplied fields change
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body models.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/categories/{id} [put]
func UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	var input models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Geçersiz istek: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var category models.Category
	if err := config.Gorm.WithContext(ctx).
		First(&category, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Kategori bulunamadı."))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Kategori getirilirken bir hata oluştu."))
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
	if input.Image != nil {
		updates["image"] = *input.Image
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Güncellenecek alan bulunamadı."))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&category).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Kategori güncellenirken bir hata oluştu."))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		First(&category, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Kategori güncellenirken bir hata oluştu."))
		return
	}

	content_cache.InvalidateCategories()
	c.JSON(http.StatusOK, models.SuccessResponse(c, category))
}
