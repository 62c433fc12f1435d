package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"campusforum/database"
	"campusforum/internal/config"
	"campusforum/internal/http-api/handler"
	"campusforum/internal/http-api/middleware"
	"campusforum/internal/http-api/repository"
	"campusforum/internal/http-api/service"
	"campusforum/internal/session"
)

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func main() {
	// 1. Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	// 2. Connect to the database
	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	// 3. Session store
	sessions, err := session.NewStore(cfg.RedisURL, cfg.RedisPassword, cfg.SessionTTL)
	if err != nil {
		logger.Error("session store connection failed", "error", err)
		os.Exit(1)
	}
	defer sessions.Close()

	// 4. Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	postLikeRepo := repository.NewPostLikeRepository(db)
	commentLikeRepo := repository.NewCommentLikeRepository(db)

	// 5. Services
	authService := service.NewAuthService(userRepo, sessions, cfg)
	notificationService := service.NewNotificationService(notificationRepo, userRepo)
	postService := service.NewPostService(postRepo, categoryRepo, userRepo, notificationService, logger)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo)
	likeService := service.NewLikeService(postLikeRepo, commentLikeRepo, postRepo, commentRepo)
	categoryService := service.NewCategoryService(categoryRepo)

	// 6. Handlers
	authHandler := handler.NewAuthHandler(authService, int(cfg.SessionTTL.Seconds()))
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	likeHandler := handler.NewLikeHandler(likeService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	uploadHandler := handler.NewUploadHandler(cfg.UploadDir, cfg.PublicBaseURL, cfg.UploadMaxSize)

	// 7. Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireSession := middleware.RequireSession(authService)
	optionalSession := middleware.OptionalSession(authService)
	requireAdmin := middleware.RequireAdmin(authService)

	api := r.Group("/api")

	auth := api.Group("/auth", middleware.RateLimit(rate.Limit(cfg.AuthRateLimit), cfg.AuthRateBurst))
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", requireSession, authHandler.Me)
		auth.PUT("/me", requireSession, authHandler.UpdateMe)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", categoryHandler.List)
		categories.POST("", requireSession, requireAdmin, categoryHandler.Create)
		categories.PUT("/:id", requireSession, requireAdmin, categoryHandler.Update)
		categories.DELETE("/:id", requireSession, requireAdmin, categoryHandler.Delete)
	}

	posts := api.Group("/posts")
	{
		posts.GET("", postHandler.List)
		posts.GET("/:id", optionalSession, postHandler.Get)
		posts.POST("", requireSession, postHandler.Create)
		posts.PUT("/:id", requireSession, requireAdmin, postHandler.Update)
		posts.DELETE("/:id", requireSession, requireAdmin, postHandler.Delete)

		posts.GET("/:id/comments", commentHandler.ListByPost)
		posts.POST("/:id/comments", requireSession, commentHandler.Create)

		posts.POST("/:id/like", requireSession, likeHandler.LikePost)
		posts.DELETE("/:id/like", requireSession, likeHandler.UnlikePost)
	}

	comments := api.Group("/comments")
	{
		comments.DELETE("/:id", requireSession, commentHandler.Delete)
		comments.POST("/:id/like", requireSession, likeHandler.LikeComment)
		comments.DELETE("/:id/like", requireSession, likeHandler.UnlikeComment)
	}

	notifications := api.Group("/notifications", requireSession)
	{
		notifications.GET("", notificationHandler.List)
		notifications.POST("/:id/read", notificationHandler.MarkAsRead)
		notifications.POST("/read_all", notificationHandler.MarkAllAsRead)
		notifications.POST("/send", requireAdmin, notificationHandler.Send)
	}

	upload := api.Group("/upload")
	{
		upload.POST("/image", requireSession, uploadHandler.UploadImage)
		upload.GET("/:filename", uploadHandler.Serve)
	}

	admin := api.Group("/admin", requireSession, requireAdmin)
	{
		admin.GET("/posts/pending", postHandler.ListPending)
		admin.POST("/posts/:id/approve", postHandler.Approve)
		admin.POST("/posts/:id/reject", postHandler.Reject)
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("api server listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
