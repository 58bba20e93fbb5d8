package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func envelopeStatusCode(t *testing.T, body []byte) int {
	t.Helper()
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	return resp.StatusCode
}

func TestResolveAllowedOrigin(t *testing.T) {
	cases := []struct {
		name        string
		origin      string
		allowed     []string
		credentials bool
		want        string
	}{
		{"wildcard", "https://loja.example", []string{"*"}, false, "*"},
		{"wildcard with credentials echoes origin", "https://loja.example", []string{"*"}, true, "https://loja.example"},
		{"allow-list match", "https://a.loja.example", []string{"https://a.loja.example", "https://b.loja.example"}, false, "https://a.loja.example"},
		{"allow-list miss", "https://evil.example", []string{"https://a.loja.example"}, false, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveAllowedOrigin(tc.origin, tc.allowed, tc.credentials); got != tc.want {
				t.Fatalf("resolveAllowedOrigin = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	t.Run("echoes caller id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(requestIDHeader, "req-abc")
		r.ServeHTTP(w, req)

		if got := w.Header().Get(requestIDHeader); got != "req-abc" {
			t.Fatalf("response header = %q, want req-abc", got)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["request_id"] != "req-abc" {
			t.Fatalf("context id = %q, want req-abc", body["request_id"])
		}
	})

	t.Run("generates id when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Header().Get(requestIDHeader) == "" {
			t.Fatal("expected a generated request id")
		}
	})
}

func TestJWTAuthMiddlewareRejectsWithoutSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuthMiddleware("", nil))
	r.GET("/admin/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/ping", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("transport status = %d, want 200 envelope", w.Code)
	}
	if code := envelopeStatusCode(t, w.Body.Bytes()); code != 401 {
		t.Fatalf("status_code = %d, want 401", code)
	}
}

func TestUserJWTAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(UserJWTAuthMiddleware("secret-secret-secret-secret-secret!!", nil))
	r.GET("/me", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	if code := envelopeStatusCode(t, w.Body.Bytes()); code != 401 {
		t.Fatalf("status_code = %d, want 401", code)
	}
}
