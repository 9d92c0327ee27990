package product_controller

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

// DeleteProduct godoc
// @Summary Delete a product
// @Description Hard delete; the product's Cloudinary folder is removed in the background
// @Tags Products
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Geçersiz ürün ID'si."))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.Gorm.WithContext(ctx).
		Select("id, images").
		First(&product, "id = ?", productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Ürün bulunamadı."))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Ürün getirilirken bir hata oluştu."))
		}
		return
	}

	if err := config.Gorm.WithContext(ctx).Delete(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Ürün silinirken bir hata oluştu."))
		return
	}

	// Delete Cloudinary folder in background (don't block response)
	if len(product.Images) > 0 && services.GetCloudinaryService() != nil {
		go func(prodID uuid.UUID) {
			folderPath := fmt.Sprintf("somine/products/%s", prodID.String())

			deleteCtx, deleteCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer deleteCancel()

			if err := services.GetCloudinaryService().DeleteFolder(deleteCtx, folderPath); err != nil {
				fmt.Printf("⚠️  Warning: Failed to delete Cloudinary folder %s: %v\n", folderPath, err)
			}
		}(productID)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, map[string]string{
		"message": "Ürün başarıyla silindi.",
		"id":      productID.String(),
	}))
}
