package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/models"
)

// AdminLogout godoc
// @Summary Admin logout
// @Description Clears the session cookie. Always succeeds, even without a session
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/logout [post]
func AdminLogout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("admin_session", "", -1, "/", "", config.IsProduction(), true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, map[string]string{
		"message": "Çıkış yapıldı.",
	}))
}
