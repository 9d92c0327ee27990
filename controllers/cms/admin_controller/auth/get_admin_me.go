package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/middleware"
	"github.com/atesyeri/somine-cms-backend/models"
)

// GetAdminMe godoc
// @Summary Current admin principal
// @Description Returns the admin bound to the verified session
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /api/admin/me [get]
func GetAdminMe(c *gin.Context) {
	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Oturum bulunamadı."))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	if err := config.Gorm.WithContext(ctx).
		First(&admin, "id = ?", adminID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Oturum bulunamadı."))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Sunucu hatası."))
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, admin.ToResponse()))
}
