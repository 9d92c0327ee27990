package page_controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/models"
)

// UpdatePage godoc
// @Summary Update a page document
// @Description Shallow merge: top-level keys in the body replace the stored keys, others are kept. Creates the document if it does not exist yet
// @Tags Pages
// @Accept json
// @Produce json
// @Param pageId path string true "Page ID (home, about, faq)"
// @Param content body object true "Top-level sections to set"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/pages/{pageId} [put]
func UpdatePage(c *gin.Context) {
	pageID := c.Param("pageId")
	if !models.IsValidPageID(pageID) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Geçersiz sayfa ID'si. 'home', 'about' veya 'faq' olmalıdır."))
		return
	}

	var patch models.JSONMap
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Geçersiz istek: "+err.Error()))
		return
	}
	if len(patch) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Güncellenecek alan bulunamadı."))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var page models.Page
	err := config.Gorm.WithContext(ctx).First(&page, "id = ?", pageID).Error
	switch {
	case err == nil:
		page.Data = page.Data.Merge(patch)
		if err := config.Gorm.WithContext(ctx).Save(&page).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Sayfa güncellenirken bir hata oluştu."))
			return
		}
	case err == gorm.ErrRecordNotFound:
		page = models.Page{ID: pageID, Data: patch}
		if err := config.Gorm.WithContext(ctx).Create(&page).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Sayfa güncellenirken bir hata oluştu."))
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Sayfa verisi getirilirken bir hata oluştu."))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, map[string]string{
		"message": fmt.Sprintf("'%s' sayfası başarıyla güncellendi.", pageID),
	}))
}
