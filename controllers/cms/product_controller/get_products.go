package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/models"
)

// GetProducts godoc
// @Summary List all products
// @Description Returns the full catalog, newest first
// @Tags Products
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/products [get]
func GetProducts(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var products []models.Product
	if err := config.Gorm.WithContext(ctx).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Ürünler getirilirken bir hata oluştu."))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, products))
}
