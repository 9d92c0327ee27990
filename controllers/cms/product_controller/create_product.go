package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/models"
)

// CreateProduct godoc
// @Summary Create a new product
// @Description Requires a bilingual name, a price string and a valid category
// @Tags Products
// @Accept json
// @Produce json
// @Param product body models.ProductRequest true "Product details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Geçersiz istek: "+err.Error()))
		return
	}

	if !req.Name.HasBoth() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Ürün adı (tr ve en) zorunludur."))
		return
	}
	if req.Price == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Fiyat zorunludur."))
		return
	}
	if !models.IsValidCategoryID(req.Category) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Kategori 'wood', 'ethanol' veya 'electric' olmalıdır."))
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		IsFeatured:  req.IsFeatured,
		Images:      models.StringList(req.Images),
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.Gorm.WithContext(ctx).Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Ürün oluşturulurken bir hata oluştu."))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, product))
}
