package page_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/models"
)

// GetPage godoc
// @Summary Get a page document
// @Description Returns the raw content document for one of the known pages
// @Tags Pages
// @Produce json
// @Param pageId path string true "Page ID (home, about, faq)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/pages/{pageId} [get]
func GetPage(c *gin.Context) {
	pageID := c.Param("pageId")
	if !models.IsValidPageID(pageID) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Geçersiz sayfa ID'si. 'home', 'about' veya 'faq' olmalıdır."))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var page models.Page
	if err := config.Gorm.WithContext(ctx).
		First(&page, "id = ?", pageID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Sayfa verisi bulunamadı."))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Sayfa verisi getirilirken bir hata oluştu."))
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, page.Data))
}
