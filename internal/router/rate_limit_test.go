package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newJSONContext(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Request.RemoteAddr = "10.0.0.9:41234"
	return c
}

func TestKeyByIPAndJSONFieldNormalizesAndRestoresBody(t *testing.T) {
	c := newJSONContext(t, `{"email":"  Duque@Loja.BR "}`)

	if got := KeyByIPAndJSONField("email")(c); got != "duque@loja.br|10.0.0.9" {
		t.Fatalf("key = %q, want duque@loja.br|10.0.0.9", got)
	}

	// The handler still needs to bind the JSON after the key func ran.
	restored, err := io.ReadAll(c.Request.Body)
	if err != nil {
		t.Fatalf("re-read body: %v", err)
	}
	if !strings.Contains(string(restored), "Duque@Loja.BR") {
		t.Fatalf("body not restored, got %q", restored)
	}
}

func TestKeyByIPAndJSONFieldFallsBackToIP(t *testing.T) {
	c := newJSONContext(t, `{"other":"x"}`)

	if got := KeyByIPAndJSONField("email")(c); got != "10.0.0.9" {
		t.Fatalf("key without field = %q, want bare IP", got)
	}
}

func TestRateLimitMiddlewarePassesThroughWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(nil, RateLimitRule{WindowSeconds: 30, MaxRequests: 1}, KeyByIP))
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"up": 1}) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status %d, want 200", i, w.Code)
		}
	}
}

func TestToInt64(t *testing.T) {
	if v, ok := toInt64(int64(7)); !ok || v != 7 {
		t.Fatalf("int64: got (%d, %v)", v, ok)
	}
	if v, ok := toInt64(42); !ok || v != 42 {
		t.Fatalf("int: got (%d, %v)", v, ok)
	}
	if v, ok := toInt64(uint16(9)); !ok || v != 9 {
		t.Fatalf("uint16: got (%d, %v)", v, ok)
	}
	if v, ok := toInt64(3.7); !ok || v != 3 {
		t.Fatalf("float64 should truncate: got (%d, %v)", v, ok)
	}
	if _, ok := toInt64("nope"); ok {
		t.Fatal("string must not convert")
	}
	if _, ok := toInt64(nil); ok {
		t.Fatal("nil must not convert")
	}
}
