package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestResolveAllowedOrigin(t *testing.T) {
	cases := []struct {
		name             string
		origin           string
		allowed          []string
		allowCredentials bool
		want             string
	}{
		{"wildcard", "https://example.com", []string{"*"}, false, "*"},
		{"wildcard with credentials echoes origin", "https://example.com", []string{"*"}, true, "https://example.com"},
		{"allow list match", "https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false, "https://a.example.com"},
		{"allow list match is case insensitive", "https://A.example.com", []string{"https://a.example.com"}, false, "https://A.example.com"},
		{"allow list miss", "https://x.example.com", []string{"https://a.example.com"}, false, ""},
		{"empty origin without wildcard", "", []string{"https://a.example.com"}, false, ""},
	}
	for _, tc := range cases {
		if got := resolveAllowedOrigin(tc.origin, tc.allowed, tc.allowCredentials); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}

func TestRequestIDMiddlewarePropagatesHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("incoming request id should be echoed, got %q", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id should match the header, got %q", resp["request_id"])
	}
}

func TestRequestIDMiddlewareGeneratesID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Header().Get(requestIDHeader) == "" {
		t.Fatalf("request id should be generated when the header is absent")
	}
}

func TestUserJWTAuthMiddlewareRejections(t *testing.T) {
	gin.SetMode(gin.TestMode)

	assertUnauthorized := func(t *testing.T, secret, authHeader string) {
		t.Helper()
		r := gin.New()
		r.Use(UserJWTAuthMiddleware(secret, nil))
		r.GET("/me", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		r.ServeHTTP(w, req)

		var resp struct {
			StatusCode int `json:"status_code"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response failed: %v", err)
		}
		if resp.StatusCode != 401 {
			t.Fatalf("status_code want 401 got %d", resp.StatusCode)
		}
	}

	t.Run("missing secret", func(t *testing.T) {
		assertUnauthorized(t, "", "Bearer whatever")
	})
	t.Run("missing header", func(t *testing.T) {
		assertUnauthorized(t, "unit-test-secret-key-0123456789abcdef", "")
	})
	t.Run("malformed header", func(t *testing.T) {
		assertUnauthorized(t, "unit-test-secret-key-0123456789abcdef", "Token abc")
	})
	t.Run("garbage token", func(t *testing.T) {
		assertUnauthorized(t, "unit-test-secret-key-0123456789abcdef", "Bearer not-a-jwt")
	})
}
