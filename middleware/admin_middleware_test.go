package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performGuardedRequest(t *testing.T, configure func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", AdminAuthMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if configure != nil {
		configure(req)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAdminAuthRejectsMissingSession(t *testing.T) {
	w := performGuardedRequest(t, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Oturum bulunamadı.")
}

func TestAdminAuthRejectsMalformedAuthorizationHeader(t *testing.T) {
	w := performGuardedRequest(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Basic abc123")
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Geçersiz yetkilendirme başlığı.")
}

func TestAdminAuthRejectsGarbageToken(t *testing.T) {
	w := performGuardedRequest(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-token"})
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Oturum geçersiz veya süresi dolmuş.")
}

func TestAdminAuthRejectsGarbageBearerToken(t *testing.T) {
	w := performGuardedRequest(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer not-a-token")
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetAdminIDFromContextMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetAdminIDFromContext(c)
	assert.False(t, ok)
}
