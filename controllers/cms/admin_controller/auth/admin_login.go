package auth

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/models"
	"github.com/atesyeri/somine-cms-backend/services"
	"github.com/atesyeri/somine-cms-backend/utils"
)

// AdminLogin godoc
// @Summary Admin login
// @Description Accepts email+password or a Google ID token. Sets the session cookie and returns the admin principal
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.AdminLoginRequest true "Login credentials"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 429 {object} models.ApiResponse
// @Router /api/admin/login [post]
func AdminLogin(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Geçersiz istek: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin

	switch {
	case req.IDToken != "":
		if config.OIDCVerifier == nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Google ile giriş yapılandırılmamış."))
			return
		}

		idToken, err := config.OIDCVerifier.Verify(ctx, req.IDToken)
		if err != nil {
			log.Printf("[auth] google token rejected: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Google kimlik doğrulaması başarısız."))
			return
		}

		var googleClaims struct {
			Email         string `json:"email"`
			EmailVerified bool   `json:"email_verified"`
		}
		if err := idToken.Claims(&googleClaims); err != nil || !googleClaims.EmailVerified {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Google kimlik doğrulaması başarısız."))
			return
		}

		if err := config.Gorm.WithContext(ctx).
			Where("email = ?", googleClaims.Email).
			First(&admin).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Bu e-posta ile yetkili bir yönetici bulunamadı."))
			} else {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Sunucu hatası."))
			}
			return
		}

	case req.Email != "" && req.Password != "":
		if err := config.Gorm.WithContext(ctx).
			Where("email = ?", req.Email).
			First(&admin).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "E-posta veya şifre hatalı."))
			} else {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Sunucu hatası."))
			}
			return
		}

		if !services.GetAdminAuthService().VerifyPassword(admin.PasswordHash, req.Password) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "E-posta veya şifre hatalı."))
			return
		}

	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "E-posta ve şifre veya Google kimlik belirteci gereklidir."))
		return
	}

	if admin.Status == "suspended" {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Hesap askıya alınmış."))
		return
	}

	token, err := services.GenerateAdminJWT(admin.ID.String(), admin.Email)
	if err != nil {
		log.Printf("❌ Failed to generate session token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Oturum oluşturulamadı."))
		return
	}

	now := time.Now()
	if err := config.Gorm.WithContext(ctx).
		Model(&admin).
		Update("last_login_at", now).Error; err != nil {
		log.Printf("⚠️  Failed to update last_login_at: %v", err)
	}
	admin.LastLoginAt = &now

	// Best effort; login must not fail because the audit insert did.
	_ = utils.LogLoginEvent(c, admin.ID)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"admin_session",
		token,
		int(services.SessionMaxAge.Seconds()),
		"/",
		"",
		config.IsProduction(),
		true,
	)

	c.JSON(http.StatusOK, models.SuccessResponse(c, models.AdminLoginResponse{
		Admin: admin.ToResponse(),
		Token: token,
	}))
}
