package routes

import (
	"time"

	"freelanceconnect/handlers"
	"freelanceconnect/middleware"
	"freelanceconnect/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires every HTTP endpoint. The websocket endpoint is
// attached by main because it owns the hub.
func SetupRouter(jwtSecret, uploadDir string) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080", "http://127.0.0.1:8080", "http://localhost:3000", "http://localhost:5500"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Stored attachment, profile picture, and resume paths all live
	// under the upload dir and are fetched back through here.
	router.Static("/uploads", uploadDir)

	// Public routes; signup and login sit behind the IP limiter.
	limiter := middleware.NewIPRateLimiter(60, time.Minute)
	public := router.Group("/api", middleware.RateLimitMiddleware(limiter))
	public.POST("/signup", handlers.Signup)
	public.POST("/login", handlers.Login)

	protected := router.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware(jwtSecret))

	// Posts
	protected.POST("/posts", middleware.RequireRole(models.RoleClient), handlers.CreateJobPost)
	protected.POST("/freelance-posts", middleware.RequireRole(models.RoleFreelancer), handlers.CreateServicePost)
	protected.GET("/feed", handlers.GetFeed)
	protected.GET("/my/posts", handlers.GetMyPosts)
	protected.GET("/search", handlers.SearchPosts)
	protected.POST("/posts/:id/comment", handlers.AddComment)

	// Matching
	protected.POST("/match", middleware.RequireRole(models.RoleClient), handlers.MatchFreelancers)

	// Profiles
	protected.GET("/profile/:id", handlers.GetProfile)
	protected.PUT("/me/profile", handlers.UpdateMyProfile)

	// Chat
	protected.POST("/chats", handlers.StartChat)
	protected.GET("/chats", handlers.GetChatrooms)
	protected.GET("/chats/:roomId/messages", handlers.GetChatHistory)

	// Resume analysis
	protected.POST("/analyze", handlers.AnalyzeResume)

	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{
				"error": "Endpoint not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
