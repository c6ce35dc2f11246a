package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clicktally/clicktally/internal/config"

	"github.com/gin-gonic/gin"
)

func TestResolveAllowedOrigin(t *testing.T) {
	cases := []struct {
		name             string
		origin           string
		allowedOrigins   []string
		allowCredentials bool
		want             string
	}{
		{name: "wildcard", origin: "https://a.example.com", allowedOrigins: []string{"*"}, want: "*"},
		{name: "wildcard with credentials echoes origin", origin: "https://a.example.com", allowedOrigins: []string{"*"}, allowCredentials: true, want: "https://a.example.com"},
		{name: "exact match", origin: "https://a.example.com", allowedOrigins: []string{"https://a.example.com"}, want: "https://a.example.com"},
		{name: "case insensitive match", origin: "https://A.example.com", allowedOrigins: []string{"https://a.example.com"}, want: "https://A.example.com"},
		{name: "not allowed", origin: "https://evil.example.com", allowedOrigins: []string{"https://a.example.com"}, want: ""},
		{name: "empty origin without wildcard", origin: "", allowedOrigins: []string{"https://a.example.com"}, want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveAllowedOrigin(tc.origin, tc.allowedOrigins, tc.allowCredentials)
			if got != tc.want {
				t.Fatalf("resolveAllowedOrigin want %q got %q", tc.want, got)
			}
		})
	}
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware(config.CORSConfig{AllowedOrigins: []string{"*"}, MaxAge: 600}))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://a.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status want 204 got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow origin want * got %q", got)
	}
	if got := w.Header().Get("Access-Control-Max-Age"); got != "600" {
		t.Fatalf("max age want 600 got %q", got)
	}
}

func TestRequestIDMiddlewareGenerates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, getRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	header := w.Header().Get("X-Request-ID")
	if header == "" {
		t.Fatalf("X-Request-ID header should be set")
	}
	if w.Body.String() != header {
		t.Fatalf("context request id %q should match header %q", w.Body.String(), header)
	}
}

func TestRequestIDMiddlewareKeepsIncoming(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "req-123" {
		t.Fatalf("X-Request-ID want req-123 got %q", got)
	}
}
