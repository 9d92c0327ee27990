package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	content_cache "github.com/atesyeri/somine-cms-backend/cache"
	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/models"
)

// GetCategories godoc
// @Summary List the fireplace categories
// @Description Returns the fixed wood/ethanol/electric set, served from a short-lived cache
// @Tags Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/categories [get]
func GetCategories(c *gin.Context) {
	if cached, ok := content_cache.GetCategories(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, cached))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var categories []models.Category
	if err := config.Gorm.WithContext(ctx).
		Order("id").
		Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Kategoriler getirilirken bir hata oluştu."))
		return
	}

	content_cache.SetCategories(categories)
	c.JSON(http.StatusOK, models.SuccessResponse(c, categories))
}
