package home_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atesyeri/somine-cms-backend/config"
	"github.com/atesyeri/somine-cms-backend/models"
)

// GetHomeContent godoc
// @Summary Aggregated home page content
// @Description Returns the home document with its project and product selections resolved to full records. Selections pointing at deleted or inactive records are dropped
// @Tags Site
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/home-content [get]
func GetHomeContent(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var page models.Page
	if err := config.Gorm.WithContext(ctx).
		First(&page, "id = ?", "home").Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Sayfa verisi bulunamadı."))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Sayfa verisi getirilirken bir hata oluştu."))
		}
		return
	}

	var home models.HomePageData
	if err := page.Data.Decode(&home); err != nil {
		log.Printf("❌ Home document does not decode: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Sayfa verisi getirilirken bir hata oluştu."))
		return
	}

	projects, err := resolveProjects(home.SelectedProjects)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Projeler getirilirken bir hata oluştu."))
		return
	}

	products := []models.Product{}
	if home.FeaturedProducts != nil {
		products, err = resolveProducts(home.FeaturedProducts.SelectedProductIDs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Ürünler getirilirken bir hata oluştu."))
			return
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, map[string]interface{}{
		"page":             page.Data,
		"selectedProjects": projects,
		"featuredProducts": products,
	}))
}

// resolveProjects turns the stored id list into active project records,
// keeping the admin's ordering and silently dropping dangling ids.
func resolveProjects(ids []string) ([]models.Project, error) {
	out := []models.Project{}
	if len(ids) == 0 {
		return out, nil
	}

	parsed := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		parsed = append(parsed, id)
	}
	if len(parsed) == 0 {
		return out, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var projects []models.Project
	if err := config.Gorm.WithContext(ctx).
		Where("id IN ? AND is_active = ?", parsed, true).
		Find(&projects).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]models.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}
	for _, id := range parsed {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func resolveProducts(ids []string) ([]models.Product, error) {
	out := []models.Product{}
	if len(ids) == 0 {
		return out, nil
	}

	parsed := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		parsed = append(parsed, id)
	}
	if len(parsed) == 0 {
		return out, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var products []models.Product
	if err := config.Gorm.WithContext(ctx).
		Where("id IN ?", parsed).
		Find(&products).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, id := range parsed {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
