package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/models"
)

// GetCategoryByID godoc
// @Summary Get a category by ID
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID (wood|ethanol|electric)"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/categories/{id} [get]
func GetCategoryByID(c *gin.Context) {
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

	c.JSON(http.StatusOK, models.SuccessResponse(c, category))
}
