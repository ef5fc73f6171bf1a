package handler_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/menu-catalog-service/internal/handler"
)

func TestRequestID(t *testing.T) {
	r := newRouter(&stubMenuService{}, &stubCategoryService{})

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	req.Header.Set(handler.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(handler.RequestIDHeader))

	w = do(r, http.MethodGet, "/live", nil)
	_, err := uuid.Parse(w.Header().Get(handler.RequestIDHeader))
	assert.NoError(t, err)
}

func TestRecovery_ReturnsEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := zerolog.New(io.Discard)
	r := gin.New()
	r.Use(handler.RequestID(), handler.Recovery(logger))
	r.GET("/boom", func(*gin.Context) { panic("kaboom") })

	w := do(r, http.MethodGet, "/boom", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal_error", decodeError(t, w).Error)
}

func TestTimeout_SetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handler.Timeout(time.Second))
	var hasDeadline bool
	r.GET("/t", func(c *gin.Context) {
		_, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	do(r, http.MethodGet, "/t", nil)
	assert.True(t, hasDeadline)
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewHealthHandler(stubPinger{err: errors.New("db down")})
	r.GET("/ready", h.Readiness)
	r.GET("/live", h.Liveness)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/live", nil).Code)
	w := do(r, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "db down")

	ok := do(newRouter(&stubMenuService{}, &stubCategoryService{}), http.MethodGet, "/api/v1/health/ready", nil)
	assert.Equal(t, http.StatusOK, ok.Code)
}

func TestDocs(t *testing.T) {
	r := newRouter(&stubMenuService{}, &stubCategoryService{})

	w := do(r, http.MethodGet, "/openapi.yaml", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi: 3.0.3")

	w = do(r, http.MethodGet, "/docs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "swagger-ui")
}
