package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// The host environment must not leak into the defaults. t.Setenv
	// registers restoration, the unset makes the key truly absent.
	for _, key := range []string{"PORT", "MONGODB_URI", "MONGODB_DATABASE", "TOKEN_DURATION", "UPLOAD_DIR", "DEBUG"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.MongoDatabase != "freelanceconnect" {
		t.Fatalf("unexpected default database: %s", cfg.MongoDatabase)
	}
	if cfg.TokenDuration != 24*time.Hour {
		t.Fatalf("unexpected token duration: %s", cfg.TokenDuration)
	}
	if cfg.UploadDir != "uploads" {
		t.Fatalf("unexpected upload dir: %s", cfg.UploadDir)
	}
	if cfg.Debug {
		t.Fatalf("debug should default to false")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DEBUG", "true")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.MongoURI != "mongodb://db:27017" {
		t.Fatalf("unexpected mongo uri: %s", cfg.MongoURI)
	}
	if cfg.JWTSecret != "test-secret" {
		t.Fatalf("unexpected jwt secret: %s", cfg.JWTSecret)
	}
	if !cfg.Debug {
		t.Fatalf("expected debug to be enabled")
	}
}
