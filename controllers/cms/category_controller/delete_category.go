package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	content_cache "github.com/atesyeri/somine-cms-backend/cache"
	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/models"
)

// DeleteCategory godoc
// @Summary Delete a category
// @Description Products keep their category value; the reference is soft
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	id := c.Param("id")

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

	if err := config.Gorm.WithContext(ctx).Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Kategori silinirken bir hata oluştu."))
		return
	}

	content_cache.InvalidateCategories()
	c.JSON(http.StatusOK, models.SuccessResponse(c, map[string]string{
		"message": "Kategori başarıyla silindi.",
		"id":      id,
	}))
}
