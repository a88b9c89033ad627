package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"blog-backend/internal/config"
	authHandler "blog-backend/internal/domains/auth/handler"
	categoryHandler "blog-backend/internal/domains/category/handler"
	commentHandler "blog-backend/internal/domains/comment/handler"
	postHandler "blog-backend/internal/domains/post/handler"
	userHandler "blog-backend/internal/domains/user/handler"
	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/container"
	"blog-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// testContainer has no services behind its handlers, so only requests that
// stop in middleware are safe to send.
func testContainer() *container.Container {
	return &container.Container{
		Config:          &config.Config{App: config.AppConfig{Version: "test"}},
		JWTManager:      jwt.NewManager("router-secret", time.Hour),
		AuthHandler:     authHandler.NewAuthHandler(nil),
		UserHandler:     userHandler.NewUserHandler(nil),
		CategoryHandler: categoryHandler.NewCategoryHandler(nil),
		PostHandler:     postHandler.NewPostHandler(nil),
		CommentHandler:  commentHandler.NewCommentHandler(nil),
	}
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(testContainer(), nil)

	protected := []struct{ method, path string }{
		{http.MethodGet, "/api/users/me"},
		{http.MethodPost, "/api/user"},
		{http.MethodGet, "/api/user/a@example.com"},
		{http.MethodPut, "/api/user/1"},
		{http.MethodDelete, "/api/user/a@example.com"},
		{http.MethodPost, "/api/categories"},
		{http.MethodPut, "/api/categories/1"},
		{http.MethodDelete, "/api/categories/1"},
		{http.MethodPost, "/api/posts"},
		{http.MethodPut, "/api/posts/1"},
		{http.MethodDelete, "/api/posts/1"},
		{http.MethodGet, "/api/comments"},
		{http.MethodGet, "/api/comments/1"},
		{http.MethodPost, "/api/comments"},
		{http.MethodPut, "/api/comments/1"},
		{http.MethodDelete, "/api/comments/1"},
	}

	for _, p := range protected {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			w := serve(r, p.method, p.path, `{}`)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"status":"fail"`)
		})
	}
}

func TestAuthRoutesRejectMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(testContainer(), nil)

	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPost, "/api/auth/login", `{`).Code)
	assert.Equal(t, http.StatusRequestEntityTooLarge,
		serve(r, http.MethodPost, "/api/auth/register", strings.Repeat("x", authBodyLimit+1)).Code)
}

func TestHealthWithoutDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(testContainer(), nil)

	w := serve(r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"disconnected"`)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}

func TestMetricsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(testContainer(), nil)

	w := serve(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestRateLimitIgnoresForwardedForFromDirectClients(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(testContainer(), middleware.NewRateLimiter(1, 1))

	allowed := 0
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		req.RemoteAddr = "203.0.113.9:1234"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.%d.%d", i/256, i%256))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusTooManyRequests {
			allowed++
		}
	}
	assert.Equal(t, 1, allowed)
}

func TestRateLimitHonoursTrustedProxy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := testContainer()
	c.Config.App.TrustedProxies = []string{"10.0.0.0/8"}
	r := SetupRouter(c, middleware.NewRateLimiter(1, 1))

	for _, client := range []string{"198.51.100.1", "198.51.100.2"} {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		req.RemoteAddr = "10.0.0.5:1234"
		req.Header.Set("X-Forwarded-For", client)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, client)
	}
}
