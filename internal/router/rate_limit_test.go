package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestKeyByIPAndJSONField(t *testing.T) {
	gin.SetMode(gin.TestMode)

	keyFunc := KeyByIPAndJSONField("email")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"  Asha@Example.com "}`))
	c.Request.Header.Set("Content-Type", "application/json")

	key := keyFunc(c)
	if !strings.HasPrefix(key, "asha@example.com|") {
		t.Fatalf("key should start with the normalized email, got %s", key)
	}

	// key 提取后 body 必须可被后续 handler 重新读取
	var payload struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		t.Fatalf("body should be readable after key extraction: %v", err)
	}
	if payload.Email != "  Asha@Example.com " {
		t.Fatalf("body content changed: %q", payload.Email)
	}
}

func TestKeyByIPAndJSONFieldFallsBackToIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	keyFunc := KeyByIPAndJSONField("email")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`not-json`))

	key := keyFunc(c)
	if key == "" {
		t.Fatalf("key should fall back to client ip")
	}
	if strings.Contains(key, "|") {
		t.Fatalf("fallback key should not contain a field part, got %s", key)
	}
}

func TestRateLimitMiddlewareWithoutClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	rule := RateLimitRule{Prefix: "sp:rate:test", WindowSeconds: 60, MaxRequests: 1, Message: "too many requests"}
	r.POST("/login", RateLimitMiddleware(nil, rule, KeyByIP), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// Redis 未启用时限流直通
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d should pass through, got %d", i, w.Code)
		}
	}
}

func TestToInt64(t *testing.T) {
	cases := []struct {
		value interface{}
		want  int64
		ok    bool
	}{
		{int64(5), 5, true},
		{int(3), 3, true},
		{uint32(7), 7, true},
		{float64(9), 9, true},
		{"nope", 0, false},
		{nil, 0, false},
	}
	for _, tc := range cases {
		got, ok := toInt64(tc.value)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("toInt64(%v) = (%d, %v), want (%d, %v)", tc.value, got, ok, tc.want, tc.ok)
		}
	}
}
