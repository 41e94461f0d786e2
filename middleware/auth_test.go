package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret"

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/whoami", JWTAuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId":   c.GetString("userId"),
			"username": c.GetString("username"),
			"role":     c.GetString("role"),
		})
	})
	router.GET("/clients-only", JWTAuthMiddleware(testSecret), RequireRole("client"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestJWTAuthMiddlewareValidToken(t *testing.T) {
	router := newAuthRouter(t)

	token, err := IssueToken(testSecret, "u1", "alice", "client", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	for _, want := range []string{`"userId":"u1"`, `"username":"alice"`, `"role":"client"`} {
		if !strings.Contains(w.Body.String(), want) {
			t.Fatalf("response missing %s: %s", want, w.Body.String())
		}
	}
}

func TestJWTAuthMiddlewareQueryToken(t *testing.T) {
	router := newAuthRouter(t)

	token, err := IssueToken(testSecret, "u2", "bob", "freelancer", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami?token="+token, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 via query token, got %d", w.Code)
	}
}

func TestJWTAuthMiddlewareRejects(t *testing.T) {
	router := newAuthRouter(t)

	cases := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"malformed", "Bearer"},
		{"garbage", "Bearer not-a-token"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", tc.name, w.Code)
		}
	}
}

func TestJWTAuthMiddlewareWrongSecret(t *testing.T) {
	router := newAuthRouter(t)

	token, err := IssueToken("other-secret", "u1", "alice", "client", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong secret, got %d", w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	router := newAuthRouter(t)

	token, err := IssueToken(testSecret, "u2", "bob", "freelancer", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/clients-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong role, got %d", w.Code)
	}
}
