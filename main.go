package main

import (
	"log"
	"os"

	"exam-command-center/be/config"
	"exam-command-center/be/handlers"
	"exam-command-center/be/middleware"
	"exam-command-center/be/services"
	"exam-command-center/be/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize the in-memory proctoring store. State lives for the
	// lifetime of the process; there is no persistence across restarts.
	st := store.New()
	if cfg.Seed.Enabled {
		st = store.NewWithState(store.SeedState())
		log.Println("Demo dataset seeded")
	}

	// Initialize camera registry client
	registry := services.NewRegistryService(cfg.Registry)
	if registry.Enabled() {
		log.Printf("Camera creation delegated to registry at %s", cfg.Registry.Endpoint)
	}

	// Initialize handlers
	roomHandler := handlers.NewRoomHandler(st)
	cameraHandler := handlers.NewCameraHandler(st, registry)
	behaviorHandler := handlers.NewBehaviorHandler(st)
	updatesHandler := handlers.NewUpdatesHandler(st)

	// Setup router
	router := setupRouter(roomHandler, cameraHandler, behaviorHandler, updatesHandler)

	// Start server
	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(roomHandler *handlers.RoomHandler, cameraHandler *handlers.CameraHandler, behaviorHandler *handlers.BehaviorHandler, updatesHandler *handlers.UpdatesHandler) *gin.Engine {
	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.RequestID())

	// CORS configuration
	// Allow all localhost origins for development
	router.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			// Allow requests with no origin (like mobile apps or curl requests)
			if origin == "" {
				return true
			}
			// Allow all localhost and 127.0.0.1 origins
			return origin == "http://localhost:8080" ||
				origin == "http://localhost:5173" ||
				origin == "http://localhost:3000" ||
				origin == "http://127.0.0.1:8080" ||
				origin == "http://127.0.0.1:5173" ||
				origin == "http://127.0.0.1:3000"
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * 3600, // 12 hours
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		// Room routes (dashboard and camera grid views)
		rooms := api.Group("/rooms")
		{
			rooms.GET("", roomHandler.GetRooms)
			rooms.POST("", roomHandler.CreateRoom)
			rooms.DELETE("", roomHandler.DeleteRooms)
			rooms.GET("/:id", roomHandler.GetRoom)
			rooms.POST("/:id/cameras", cameraHandler.CreateCamera)
			rooms.DELETE("/:id/cameras", cameraHandler.DeleteCameras)
			rooms.GET("/:id/cameras/:cameraId", cameraHandler.GetCamera)
		}

		// Behavior routes (live-view incident controls)
		subjects := api.Group("/subjects")
		{
			subjects.POST("/:id/behaviors/suspicious", behaviorHandler.LogSuspicious)
			subjects.POST("/:id/behaviors/recordings", behaviorHandler.StartRecording)
			subjects.GET("/:id/behavior", behaviorHandler.GetBehavior)
		}

		// Change feed for dashboard refresh
		api.GET("/ws/updates", updatesHandler.Stream)
	}

	return router
}
