package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/models"
	"github.com/atesyeri/somine-cms-backend/services"
)

// SessionCookieName is the HttpOnly cookie carrying the admin session token.
const SessionCookieName = "admin_session"

// AdminAuthMiddleware verifies the session token before any mutating route
// runs. The token comes from the session cookie, with an Authorization
// header fallback for API clients. The principal must still exist in the
// admins table; a deleted or suspended admin is rejected even with a valid
// token.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Oturum bulunamadı."))
				c.Abort()
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Geçersiz yetkilendirme başlığı."))
				c.Abort()
				return
			}
			token = parts[1]
		}

		claims, err := services.VerifyAdminJWT(token)
		if err != nil {
			log.Printf("[auth] invalid token: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Oturum geçersiz veya süresi dolmuş."))
			c.Abort()
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		var admin models.Admin
		if err := config.Gorm.WithContext(ctx).
			Select("id, status").
			Where("id = ?", claims.AdminID).
			First(&admin).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Oturum bulunamadı."))
			} else {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Sunucu hatası."))
			}
			c.Abort()
			return
		}

		if admin.Status == "suspended" {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Hesap askıya alınmış."))
			c.Abort()
			return
		}

		c.Set("adminID", claims.AdminID)
		c.Set("adminEmail", claims.Email)

		c.Next()
	}
}

// GetAdminIDFromContext returns the authenticated admin id set by the guard.
func GetAdminIDFromContext(c *gin.Context) (string, bool) {
	adminID, exists := c.Get("adminID")
	if !exists {
		return "", false
	}
	return adminID.(string), true
}
