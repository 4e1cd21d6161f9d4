// 測試目的：桶子空了要回 429 + Retry-After；不同 key 各自有桶
package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func limitedServer(t *testing.T, conf LimiterConfig, key KeySelector) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rl := NewRateLimiter(conf)
	r.GET("/p", rl.Middleware(key), func(c *gin.Context) { c.String(200, "ok") })
	return r
}

func get(s *gin.Engine, ip string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.RemoteAddr = ip + ":1234"
	s.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_BurstExhausted_429(t *testing.T) {
	s := limitedServer(t,
		LimiterConfig{RPS: 0.001, Burst: 2, IdleTTL: time.Minute},
		func(c *gin.Context) string { return "ip:" + c.ClientIP() })

	if w := get(s, "10.0.0.1"); w.Code != 200 {
		t.Fatalf("1st want 200, got %d", w.Code)
	}
	if w := get(s, "10.0.0.1"); w.Code != 200 {
		t.Fatalf("2nd want 200, got %d", w.Code)
	}
	w := get(s, "10.0.0.1")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("3rd want 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatalf("429 must carry Retry-After")
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	s := limitedServer(t,
		LimiterConfig{RPS: 0.001, Burst: 1, IdleTTL: time.Minute},
		func(c *gin.Context) string { return "ip:" + c.ClientIP() })

	if w := get(s, "10.0.0.1"); w.Code != 200 {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if w := get(s, "10.0.0.1"); w.Code != 429 {
		t.Fatalf("same ip want 429, got %d", w.Code)
	}
	// 另一個 IP 有自己的桶
	if w := get(s, "10.0.0.2"); w.Code != 200 {
		t.Fatalf("other ip want 200, got %d", w.Code)
	}
}
