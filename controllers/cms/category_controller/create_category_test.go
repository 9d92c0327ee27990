package category_controller

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

func performCreateCategory(t *testing.T, body string) (*httptest.ResponseRecorder, models.ApiResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	CreateCategory(c)

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestCreateCategoryRejectsUnknownID(t *testing.T) {
	w, resp := performCreateCategory(t, `{
		"id": "gas",
		"title": {"tr": "Gazlı", "en": "Gas"}
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Kategori ID'si 'wood', 'ethanol' veya 'electric' olmalıdır.", resp.Error)
}

func TestCreateCategoryRequiresBilingualTitle(t *testing.T) {
	w, resp := performCreateCategory(t, `{
		"id": "wood",
		"title": {"tr": "Odun Şömineleri", "en": ""}
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Kategori başlığı (tr ve en) zorunludur.", resp.Error)
}

func TestCreateCategoryRejectsMalformedJSON(t *testing.T) {
	w, resp := performCreateCategory(t, "{")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
}
