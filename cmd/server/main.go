package main

import (
	"log"
	"time"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/pipelinekit/asset-tracking-api/internal/config"
	"github.com/pipelinekit/asset-tracking-api/internal/constants"
	"github.com/pipelinekit/asset-tracking-api/internal/database"
	"github.com/pipelinekit/asset-tracking-api/internal/handlers"
	"github.com/pipelinekit/asset-tracking-api/internal/middleware"
	"github.com/pipelinekit/asset-tracking-api/internal/repository"
	"github.com/pipelinekit/asset-tracking-api/internal/services"
	"github.com/pipelinekit/asset-tracking-api/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Wire repositories, services, handlers
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	friendRepo := repository.NewFriendRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	fileRepo := repository.NewFileRepository(db)

	blobStore := storage.NewLocalStore(cfg.StorageRoot)

	authService := services.NewAuthService(userRepo)
	friendService := services.NewFriendService(friendRepo, userRepo)
	projectService := services.NewProjectService(projectRepo, blobStore)
	fileService := services.NewFileService(fileRepo)

	authHandler := handlers.NewAuthHandler(authService)
	friendHandler := handlers.NewFriendHandler(friendService)
	projectHandler := handlers.NewProjectHandler(projectService)
	fileHandler := handlers.NewFileHandler(fileService)

	// Liveness endpoints
	r.GET("/", func(c *gin.Context) {
		c.String(200, "Asset tracking API is running")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Account routes
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/getuser", authHandler.GetUser)
	r.POST("/searchuser", authHandler.SearchUsers)
	r.POST("/profile", authHandler.UpdateProfile)
	r.POST("/changepass", authHandler.ChangePassword)
	r.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)

	// Friend routes
	r.PUT("/addfriend", friendHandler.AddFriend)
	r.POST("/getfriends", friendHandler.GetFriends)

	// Project routes
	r.POST("/newproject", projectHandler.CreateProject)
	r.POST("/projectdetails", projectHandler.GetProjectDetails)
	r.POST("/projectinfo", projectHandler.GetProjectInfo)
	r.POST("/projectlist", projectHandler.ListProjects)
	r.POST("/projectimage", projectHandler.AddProjectImage)
	r.DELETE("/deleteProject", projectHandler.DeleteProject)

	// File routes
	r.POST("/upload", fileHandler.Upload)
	r.POST("/getprojectimages", fileHandler.GetProjectImages)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
