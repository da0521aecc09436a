package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestCacheControlHeader(t *testing.T) {
	router := newTestRouter()
	router.GET("/cached", CacheControlMiddleware("private", 5*time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cached", nil))

	if got := w.Header().Get("Cache-Control"); got != "private, max-age=300" {
		t.Errorf("expected private, max-age=300, got %q", got)
	}
}

func TestRequestBodyLimitRejectsOversized(t *testing.T) {
	router := newTestRouter()
	router.POST("/upload", RequestBodyLimit(16), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(strings.Repeat("x", 64)))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected %d, got %d", http.StatusRequestEntityTooLarge, w.Code)
	}
}

func TestRequestBodyLimitPassesSmallBody(t *testing.T) {
	router := newTestRouter()
	router.POST("/upload", RequestBodyLimit(1024), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("small"))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected %d, got %d", http.StatusOK, w.Code)
	}
}

func TestRequestTracingGeneratesID(t *testing.T) {
	router := newTestRouter()
	router.GET("/", RequestTracingMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Header().Get(requestIDHeader) == "" {
		t.Error("expected a generated request ID header")
	}
}

func TestRequestTracingKeepsUpstreamID(t *testing.T) {
	router := newTestRouter()
	router.GET("/", RequestTracingMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "upstream-id")
	router.ServeHTTP(w, req)

	if got := w.Header().Get(requestIDHeader); got != "upstream-id" {
		t.Errorf("expected upstream-id, got %q", got)
	}
}
