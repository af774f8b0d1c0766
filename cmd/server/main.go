package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sena-h/group-companion/internal/config"
	"github.com/sena-h/group-companion/internal/database"
	"github.com/sena-h/group-companion/internal/handlers"
	"github.com/sena-h/group-companion/internal/logger"
	"github.com/sena-h/group-companion/internal/middleware"
	"github.com/sena-h/group-companion/internal/repository"
	"github.com/sena-h/group-companion/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFile)

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

	db := database.GetDB()

	// Repositories
	adminRepo := repository.NewAdminRepository(db)
	channelRepo := repository.NewChannelRepository(db)
	keyRepo := repository.NewAccessKeyRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	templateRepo := repository.NewScheduleTemplateRepository(db)

	// Services
	authService := services.NewAuthService(adminRepo, cfg.JWTSecret)
	channelService := services.NewChannelService(channelRepo, keyRepo)
	groupService := services.NewGroupService(groupRepo, channelRepo)
	taskService := services.NewTaskService(taskRepo, groupRepo)
	scheduleService := services.NewScheduleService(templateRepo, groupRepo)
	lineService := services.NewLineService(channelService)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	channelHandler := handlers.NewChannelHandler(channelService)
	groupHandler := handlers.NewGroupHandler(groupService)
	taskHandler := handlers.NewTaskHandler(taskService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	webhookHandler := handlers.NewWebhookHandler(lineService)

	// Initialize Gin router
	r := gin.Default()

	// Permissive CORS; the LIFF frontend is served from another origin.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Group companion API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Admin routes
		admin := api.Group("/admin")
		{
			admin.POST("/login", authHandler.Login)

			protected := admin.Group("")
			protected.Use(middleware.RequireAdmin(authService))
			{
				protected.GET("/channels", channelHandler.ListChannels)
				protected.PATCH("/channels/:id", channelHandler.UpdateChannel)
				protected.GET("/access-keys", channelHandler.ListAccessKeys)
				protected.POST("/access-keys", channelHandler.IssueAccessKey)
			}
		}

		// Self-service channel registration (access-key gated)
		api.POST("/channels/register", channelHandler.Register)

		// Group routes
		api.POST("/groups", groupHandler.CreateGroup)

		// Task routes
		api.GET("/tasks", taskHandler.ListTasks)
		api.POST("/tasks", taskHandler.CreateTask)
		api.PATCH("/tasks/:id/execute", taskHandler.ExecuteTask)
		api.PATCH("/tasks/:id/thank", taskHandler.ThankTask)

		// Schedule template routes
		api.GET("/schedule-templates", scheduleHandler.ListTemplates)
		api.POST("/schedule-templates", scheduleHandler.CreateTemplate)
		api.GET("/schedule-templates/:id/ics", scheduleHandler.ExportCalendar)

		// User routes
		api.GET("/users/:id/points", groupHandler.GetUserPoints)
		api.GET("/users/by-line-id", groupHandler.GetUserByLineID)
	}

	// LINE platform webhook
	r.POST("/webhook", webhookHandler.Handle)

	// Start server
	logger.Info("server starting", "addr", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
