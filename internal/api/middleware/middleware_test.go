package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.POST("/optimize", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": RequestID(c)})
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func TestCORSPreflight(t *testing.T) {
	r := newRouter(CORS(nil))

	req := httptest.NewRequest(http.MethodOptions, "/optimize", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSRestrictedOrigin(t *testing.T) {
	r := newRouter(CORS([]string{"https://app.example.com"}))

	req := httptest.NewRequest(http.MethodPost, "/optimize", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodPost, "/optimize", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggerAssignsRequestID(t *testing.T) {
	r := newRouter(Logger())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/optimize", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	id := rec.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)
	assert.Contains(t, rec.Body.String(), id)

	req := httptest.NewRequest(http.MethodPost, "/optimize", nil)
	req.Header.Set(RequestIDHeader, "client-id")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "client-id", rec.Header().Get(RequestIDHeader))
}

func TestLoggerReplacesUnsafeRequestID(t *testing.T) {
	r := newRouter(Logger())

	for _, bad := range []string{
		strings.Repeat("a", 65),
		"id with spaces",
		"id\tforged=1",
		"ümlaut",
	} {
		req := httptest.NewRequest(http.MethodPost, "/optimize", nil)
		req.Header.Set(RequestIDHeader, bad)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		id := rec.Header().Get(RequestIDHeader)
		assert.NotEqual(t, bad, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err, "header %q", bad)
	}

	req := httptest.NewRequest(http.MethodPost, "/optimize", nil)
	req.Header.Set(RequestIDHeader, "trace.01_AB-z")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "trace.01_AB-z", rec.Header().Get(RequestIDHeader))
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	r := newRouter(ErrorHandler())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"boom"}`, rec.Body.String())
}
