package reviews_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atesyeri/somine-cms-backend/models"
	"github.com/atesyeri/somine-cms-backend/services"
)

// GetReviews godoc
// @Summary Google reviews
// @Description Proxies the Places details call through a one hour Redis cache. ?lang switches the review language (default tr)
// @Tags Site
// @Produce json
// @Param lang query string false "Review language" default(tr)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /api/reviews [get]
func GetReviews(c *gin.Context) {
	lang := c.DefaultQuery("lang", "tr")

	result, err := services.GetReviewsService().GetReviews(c.Request.Context(), lang)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReviewsNotConfigured):
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Yorum servisi yapılandırılmamış."))
		case errors.Is(err, services.ErrReviewsUpstream):
			c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Google yorumları şu anda alınamıyor."))
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Yorumlar getirilirken bir hata oluştu."))
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, result))
}
