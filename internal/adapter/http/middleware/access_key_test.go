package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func gatedRouter(expected string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AccessKey(expected))
	r.GET("/v1/estimates", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAccessKey(t *testing.T) {
	t.Run("query key passes", func(t *testing.T) {
		r := gatedRouter("secret")
		req := httptest.NewRequest(http.MethodGet, "/v1/estimates?key=secret", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("header key passes", func(t *testing.T) {
		r := gatedRouter("secret")
		req := httptest.NewRequest(http.MethodGet, "/v1/estimates", nil)
		req.Header.Set(AccessKeyHeader, "secret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("wrong key rejected", func(t *testing.T) {
		r := gatedRouter("secret")
		req := httptest.NewRequest(http.MethodGet, "/v1/estimates?key=nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing key rejected", func(t *testing.T) {
		r := gatedRouter("secret")
		req := httptest.NewRequest(http.MethodGet, "/v1/estimates", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("empty expected key disables the gate", func(t *testing.T) {
		r := gatedRouter("")
		req := httptest.NewRequest(http.MethodGet, "/v1/estimates", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
