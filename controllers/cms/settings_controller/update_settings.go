package settings_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	content_cache "github.com/atesyeri/somine-cms-backend/cache"
	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/models"
)

// UpdateSettings godoc
// @Summary Update site settings
// @Description Shallow merge into the single settings document, creating it on first write
// @Tags Settings
// @Accept json
// @Produce json
// @Param settings body object true "Top-level settings keys to set"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/site-settings [put]
func UpdateSettings(c *gin.Context) {
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

	var settings models.SiteSettings
	err := config.Gorm.WithContext(ctx).
		First(&settings, "id = ?", models.SiteSettingsDocID).Error
	switch {
	case err == nil:
		settings.Data = settings.Data.Merge(patch)
		if err := config.Gorm.WithContext(ctx).Save(&settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Site ayarları güncellenirken bir hata oluştu."))
			return
		}
	case err == gorm.ErrRecordNotFound:
		settings = models.SiteSettings{ID: models.SiteSettingsDocID, Data: patch}
		if err := config.Gorm.WithContext(ctx).Create(&settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Site ayarları güncellenirken bir hata oluştu."))
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Site ayarları getirilirken bir hata oluştu."))
		return
	}

	content_cache.InvalidateSettings()

	c.JSON(http.StatusOK, models.SuccessResponse(c, map[string]string{
		"message": "Site ayarları başarıyla güncellendi.",
	}))
}
