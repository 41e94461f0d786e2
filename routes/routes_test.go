package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestUploadedFilesAreServed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	sub := filepath.Join(dir, "client_u1", "posts", "p1", "multimedia")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(sub, "doc.pdf"), []byte("content"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	router := SetupRouter("test-secret", dir)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/client_u1/posts/p1/multimedia/doc.pdf", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for stored file, got %d", w.Code)
	}
	if w.Body.String() != "content" {
		t.Fatalf("unexpected body: %q", w.Body.String())
	}
}

func TestUploadedFileMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := SetupRouter("test-secret", t.TempDir())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/nope.pdf", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing file, got %d", w.Code)
	}
}
