package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recruitai-backend/internal/delivery/http/response"
	"recruitai-backend/internal/domain"
	"recruitai-backend/pkg/apperror"
	"recruitai-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(response.RequestIDKey)) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Body.String(), 36)
	assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "trace-1")
	w = serve(r, req)
	assert.Equal(t, "trace-1", w.Body.String())
}

func TestErrorHandlerHidesInternalErrors(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) { _ = c.Error(apperror.Conflict("Username already exists")) })
	r.GET("/raw", func(c *gin.Context) { _ = c.Error(errors.New("pq: relation does not exist")) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/app", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Username already exists")

	w = serve(r, httptest.NewRequest(http.MethodGet, "/raw", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "relation")
}

func TestAuthMiddlewareAndRequireView(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	r := gin.New()
	r.Use(AuthMiddleware(tokens))
	r.GET("/post", RequireView(domain.ViewPostJobs), func(c *gin.Context) {
		c.String(http.StatusOK, "%d", c.GetInt64(string(domain.KeyUserID)))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/post", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/post", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)

	candidate, _, err := tokens.Issue(1, "alice", string(domain.RoleCandidate))
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/post", nil)
	req.Header.Set("Authorization", "Bearer "+candidate)
	assert.Equal(t, http.StatusForbidden, serve(r, req).Code)

	recruiter, _, err := tokens.Issue(2, "bob", string(domain.RoleRecruiter))
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/post", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: recruiter})
	w = serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Body.String())
}

func TestRateLimitLocalFallback(t *testing.T) {
	limiter := NewRateLimiter(nil, RateLimitConfig{Limit: 3, Window: time.Minute, KeyPrefix: "rl:test:"})
	r := gin.New()
	r.Use(limiter.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))

	// A different client has its own bucket
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	assert.Equal(t, http.StatusOK, serve(r, req).Code)
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware("http://localhost:3000/"))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := serve(r, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	assert.Equal(t, http.StatusForbidden, serve(r, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
