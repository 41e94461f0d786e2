package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freelanceconnect/ai"
	"freelanceconnect/config"
	"freelanceconnect/database"
	"freelanceconnect/handlers"
	"freelanceconnect/logger"
	"freelanceconnect/routes"
	"freelanceconnect/storage"
	"freelanceconnect/websocket"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Optional .env for local runs; deployed environments set real env
	// variables.
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(!cfg.Debug, cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// MongoDB with a few connection attempts; container orchestration
	// may start the database a moment later.
	var dbErr error
	for i := 1; i <= 3; i++ {
		if dbErr = database.Connect(cfg.MongoURI, cfg.MongoDatabase); dbErr != nil {
			log.Warn("mongodb connection attempt failed", zap.Int("attempt", i), zap.Error(dbErr))
			time.Sleep(2 * time.Second)
			continue
		}
		break
	}
	if dbErr != nil {
		log.Fatal("failed to connect to mongodb", zap.Error(dbErr))
	}
	defer database.Disconnect()
	log.Info("mongodb connected", zap.String("database", cfg.MongoDatabase))

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	uploads, err := storage.New(cfg.UploadDir)
	if err != nil {
		log.Fatal("init upload store", zap.Error(err))
	}

	var analyzer *ai.Analyzer
	if cfg.GeminiAPIKey != "" {
		gen, err := ai.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal("init gemini client", zap.Error(err))
		}
		analyzer = ai.NewAnalyzer(gen, log)
		log.Info("resume analysis enabled", zap.String("model", gen.Model()))
	} else {
		log.Warn("GEMINI_API_KEY not set, resume analysis disabled")
	}

	handlers.Init(handlers.Options{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenDuration,
		Uploads:   uploads,
		Analyzer:  analyzer,
		Log:       log,
	})

	router := routes.SetupRouter(cfg.JWTSecret, cfg.UploadDir)

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "FreelanceConnect API running", "service": "healthy"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()

	hub := websocket.NewHub(database.ChatStore{}, log)
	go hub.Run(hubCtx)

	router.GET("/ws", gin.WrapF(websocket.Handler(hub, cfg.JWTSecret)))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
