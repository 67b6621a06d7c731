package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/taskturkey/taskturkey-api/internal/config"
	"github.com/taskturkey/taskturkey-api/internal/database"
	apierrors "github.com/taskturkey/taskturkey-api/internal/errors"
	"github.com/taskturkey/taskturkey-api/internal/handlers"
	"github.com/taskturkey/taskturkey-api/internal/middleware"
	"github.com/taskturkey/taskturkey-api/internal/repository"
	"github.com/taskturkey/taskturkey-api/internal/services"
	"github.com/taskturkey/taskturkey-api/internal/token"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize services
	tokens := token.NewCodec(cfg.TokenSecret)
	authService := services.NewAuthService(userRepo)
	teamService := services.NewTeamService(teamRepo)
	projectService := services.NewProjectService(projectRepo, teamRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, teamRepo)
	analyticsService := services.NewAnalyticsService(taskRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, tokens)
	teamHandler := handlers.NewTeamHandler(teamService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	healthHandler := handlers.NewHealthHandler(userRepo, teamRepo, projectRepo, taskRepo)

	// Initialize Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	requireAuth := middleware.RequireAuth(tokens, userRepo)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", requireAuth, authHandler.GetCurrentUser)
		}

		// Team routes (protected)
		teams := api.Group("/teams")
		teams.Use(requireAuth)
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
		}

		// Project routes (protected)
		projects := api.Group("/projects")
		projects.Use(requireAuth)
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(requireAuth)
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		// Analytics routes (protected)
		api.GET("/analytics/dashboard", requireAuth, analyticsHandler.Dashboard)

		// Health check endpoint (public)
		api.GET("/health", healthHandler.Health)
	}

	// Unknown API paths get the JSON envelope, not gin's default 404
	r.NoRoute(func(c *gin.Context) {
		apierrors.NotFound(c, apierrors.ErrCodeNotFound, "API endpoint not found")
	})

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
