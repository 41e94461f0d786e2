package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	TokenDuration time.Duration
	UploadDir     string
	GeminiAPIKey  string
	GeminiModel   string
	Debug         bool
}

// Load reads configuration from the environment. Every key has a default
// except JWT_SECRET and GEMINI_API_KEY, which main treats as required for
// the features that need them.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("MONGODB_URI", "mongodb://127.0.0.1:27017")
	v.SetDefault("MONGODB_DATABASE", "freelanceconnect")
	v.SetDefault("TOKEN_DURATION", 24*time.Hour)
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("DEBUG", false)

	return &Config{
		Port:          v.GetString("PORT"),
		MongoURI:      v.GetString("MONGODB_URI"),
		MongoDatabase: v.GetString("MONGODB_DATABASE"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		TokenDuration: v.GetDuration("TOKEN_DURATION"),
		UploadDir:     v.GetString("UPLOAD_DIR"),
		GeminiAPIKey:  v.GetString("GEMINI_API_KEY"),
		GeminiModel:   v.GetString("GEMINI_MODEL"),
		Debug:         v.GetBool("DEBUG"),
	}
}
