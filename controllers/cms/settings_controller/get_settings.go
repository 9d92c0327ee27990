package settings_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	content_cache "github.com/atesyeri/somine-cms-backend/cache"
	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/models"
)

// GetSettings godoc
// @Summary Get site settings
// @Description Contact details, social links and footer copy. Served from a short lived in-process cache
// @Tags Settings
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/site-settings [get]
func GetSettings(c *gin.Context) {
	if cached, found := content_cache.GetSettings(); found {
		c.JSON(http.StatusOK, models.SuccessResponse(c, cached))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var settings models.SiteSettings
	if err := config.Gorm.WithContext(ctx).
		First(&settings, "id = ?", models.SiteSettingsDocID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Site ayarları bulunamadı."))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Site ayarları getirilirken bir hata oluştu."))
		}
		return
	}

	content_cache.SetSettings(settings.Data)

	c.JSON(http.StatusOK, models.SuccessResponse(c, settings.Data))
}
