package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/models"
)

// UpdateProduct godoc
// @Summary Update an existing product
// @Description Partial update; only the supplied fields change
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param product body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/products/{id} [put]
func UpdateProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Geçersiz ürün ID'si."))
		return
	}

	var input models.UpdateProductRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Geçersiz istek: "+err.Error()))
		return
	}

	if input.Category != nil && !models.IsValidCategoryID(*input.Category) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Kategori 'wood', 'ethanol' veya 'electric' olmalıdır."))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.Gorm.WithContext(ctx).
		First(&product, "id = ?", productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Ürün bulunamadı."))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Ürün getirilirken bir hata oluştu."))
		}
		return
	}

	// Build update map (only non-nil fields)
	updates := make(map[string]interface{})
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.IsFeatured != nil {
		updates["is_featured"] = *input.IsFeatured
	}
	if input.Images != nil {
		updates["images"] = models.StringList(*input.Images)
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Güncellenecek alan bulunamadı."))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&product).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Ürün güncellenirken bir hata oluştu."))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		First(&product, "id = ?", productID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Ürün güncellenirken bir hata oluştu."))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, product))
}
