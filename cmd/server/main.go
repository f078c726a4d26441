// @title           Practicas Profesionales API
// @version         1.0.0
// @description     Backend API for university professional internship paperwork. Drives the staged document approval pipeline (Pendiente, EnRevision, Aceptado, Rechazado, Eliminado), stores document files on the campus FTP server, and projects practice progress.

// @contact.name   API Support
// @contact.email  soporte@example.edu.mx

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"log"
	"net/http"
	"net/url"
	"time"

	"practicas-backend/docs"
	"practicas-backend/internal/config"
	"practicas-backend/internal/database"
	"practicas-backend/internal/ftp"
	"practicas-backend/internal/handlers"
	"practicas-backend/internal/middleware"
	"practicas-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	// Database client
	dbClient, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database client: %v", err)
	}
	defer dbClient.Close()

	if err := dbClient.Migrate(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Remote file store
	ftpClient := ftp.NewClient(cfg.FTPAddr, cfg.FTPUser, cfg.FTPPassword, cfg.FTPBaseDir)

	// Optional Redis-backed rate limiter for the upload endpoint
	var limiter *middleware.RedisLimiter
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: invalid REDIS_URL, rate limiting disabled: %v", err)
		} else {
			limiter = middleware.NewRedisLimiter(redis.NewClient(opts))
		}
	}

	// Services
	documentService := services.NewDocumentService(dbClient, dbClient, dbClient, dbClient, ftpClient, dbClient)
	progressService := services.NewProgressService(dbClient, dbClient, dbClient)

	// Handlers
	documentsHandler := handlers.NewDocumentsHandler(documentService)
	progressHandler := handlers.NewProgressHandler(progressService)

	// Setup router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// API routes
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))

	// Document pipeline
	api.POST("/documents",
		middleware.RequireRoles(services.RoleStudent, services.RoleAdmin),
		middleware.RateLimit(limiter, 30, time.Minute),
		documentsHandler.Upload)
	api.PATCH("/documents/:document_id/submit",
		middleware.RequireRoles(services.RoleStudent),
		documentsHandler.Submit)
	api.PATCH("/documents/:document_id/approve",
		middleware.RequireRoles(services.RoleAssessor, services.RoleAdmin),
		documentsHandler.Approve)
	api.PATCH("/documents/:document_id/reject",
		middleware.RequireRoles(services.RoleAssessor, services.RoleAdmin),
		documentsHandler.Reject)
	api.DELETE("/documents/:document_id",
		middleware.RequireRoles(services.RoleStudent),
		documentsHandler.Remove)

	// Progress and listing
	api.GET("/students/:student_id/documents", documentsHandler.List)
	api.GET("/students/:student_id/progress", progressHandler.GetMilestone)
	api.GET("/students/:student_id/progress/percentage", progressHandler.GetPercentage)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
