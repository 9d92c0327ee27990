package upload_controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atesyeri/somine-cms-backend/models"
	"github.com/atesyeri/somine-cms-backend/services"
)

var validUploadKinds = map[string]bool{
	"products": true,
	"projects": true,
	"pages":    true,
}

// UploadImages godoc
// @Summary Upload images to Cloudinary
// @Description Multipart upload. Files land under somine/{kind}/{id} and the secure URLs come back in order
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param kind formData string true "Target kind (products, projects, pages)"
// @Param id formData string true "Owning document ID"
// @Param images formData file true "Image files"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/uploads [post]
func UploadImages(c *gin.Context) {
	if services.GetCloudinaryService() == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Görsel yükleme servisi yapılandırılmamış."))
		return
	}

	kind := c.PostForm("kind")
	if !validUploadKinds[kind] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Geçersiz yükleme türü. 'products', 'projects' veya 'pages' olmalıdır."))
		return
	}

	docID := c.PostForm("id")
	if docID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Belge ID'si zorunludur."))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Geçersiz form verisi: "+err.Error()))
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Yüklenecek görsel bulunamadı."))
		return
	}

	folder := fmt.Sprintf("somine/%s/%s", kind, docID)

	urls, err := services.GetCloudinaryService().UploadMultipleImages(c.Request.Context(), files, folder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Görseller yüklenirken bir hata oluştu."))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, map[string]interface{}{
		"urls": urls,
	}))
}
