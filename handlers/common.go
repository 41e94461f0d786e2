package handlers

import (
	"time"

	"freelanceconnect/ai"
	"freelanceconnect/storage"

	"go.uber.org/zap"
)

// Dependencies shared across all handler files, set once from main.
var (
	jwtSecret string
	tokenTTL  = 24 * time.Hour
	uploads   *storage.Store
	analyzer  *ai.Analyzer
	log       = zap.NewNop()
)

type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	Uploads   *storage.Store
	// Analyzer may be nil when no API key is configured; the analyze
	// endpoint then responds 503.
	Analyzer *ai.Analyzer
	Log      *zap.Logger
}

func Init(opts Options) {
	jwtSecret = opts.JWTSecret
	if opts.TokenTTL > 0 {
		tokenTTL = opts.TokenTTL
	}
	uploads = opts.Uploads
	analyzer = opts.Analyzer
	if opts.Log != nil {
		log = opts.Log
	}
}
