package product_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atesyeri/somine-cms-backend/models"
)

func performCreateProduct(t *testing.T, body string) (*httptest.ResponseRecorder, models.ApiResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	CreateProduct(c)

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestCreateProductRejectsMalformedJSON(t *testing.T) {
	w, resp := performCreateProduct(t, "{not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "Geçersiz istek")
}

func TestCreateProductRequiresBilingualName(t *testing.T) {
	w, resp := performCreateProduct(t, `{
		"name": {"tr": "Şömine", "en": ""},
		"price": "45.000 TL",
		"category": "wood"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Ürün adı (tr ve en) zorunludur.", resp.Error)
}

func TestCreateProductRequiresPrice(t *testing.T) {
	w, resp := performCreateProduct(t, `{
		"name": {"tr": "Şömine", "en": "Fireplace"},
		"category": "wood"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Fiyat zorunludur.", resp.Error)
}

func TestCreateProductRejectsUnknownCategory(t *testing.T) {
	w, resp := performCreateProduct(t, `{
		"name": {"tr": "Şömine", "en": "Fireplace"},
		"price": "45.000 TL",
		"category": "gas"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Kategori 'wood', 'ethanol' veya 'electric' olmalıdır.", resp.Error)
}

func TestUpdateProductRejectsBadID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
	c.Request = httptest.NewRequest(http.MethodPut, "/api/products/not-a-uuid", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	UpdateProduct(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
