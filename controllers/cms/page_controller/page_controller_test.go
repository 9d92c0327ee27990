package page_controller

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

func TestGetPageRejectsUnknownID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "pageId", Value: "contact"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/api/pages/contact", nil)

	GetPage(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Geçersiz sayfa ID'si. 'home', 'about' veya 'faq' olmalıdır.", resp.Error)
}

func TestUpdatePageRejectsUnknownID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "pageId", Value: "landing"}}
	c.Request = httptest.NewRequest(http.MethodPut, "/api/pages/landing", strings.NewReader(`{"hero":{}}`))
	c.Request.Header.Set("Content-Type", "application/json")

	UpdatePage(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePageRejectsEmptyBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "pageId", Value: "home"}}
	c.Request = httptest.NewRequest(http.MethodPut, "/api/pages/home", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	UpdatePage(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Güncellenecek alan bulunamadı.", resp.Error)
}
