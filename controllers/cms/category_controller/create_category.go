package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	content_cache "github.com/atesyeri/somine-cms-backend/cache"
	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/models"
)

// CreateCategory godoc
// @Summary Create a category
// @Description The id is one of the fixed values, not generated; duplicates are rejected
// @Tags Categories
// @Accept json
// @Produce json
// @Param category body models.CategoryRequest true "Category details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Geçersiz istek: "+err.Error()))
		return
	}

	if !models.IsValidCategoryID(req.ID) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Kategori ID'si 'wood', 'ethanol' veya 'electric' olmalıdır."))
		return
	}
	if !req.Title.HasBoth() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Kategori başlığı (tr ve en) zorunludur."))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing models.Category
	err := config.Gorm.WithContext(ctx).
		First(&existing, "id = ?", req.ID).Error
	if err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "'"+req.ID+"' ID'li kategori zaten mevcut."))
		return
	}
	if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Kategori oluşturulurken bir hata oluştu."))
		return
	}

	category := models.Category{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
	}

	if err := config.Gorm.WithContext(ctx).Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Kategori oluşturulurken bir hata oluştu."))
		return
	}

	content_cache.InvalidateCategories()
	c.JSON(http.StatusCreated, models.SuccessResponse(c, category))
}
