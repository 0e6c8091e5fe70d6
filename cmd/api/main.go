package main

import (
	"log"

	_ "salesapi/api/swagger" // swagger docs
	"salesapi/internal/config"
	"salesapi/internal/database"
	"salesapi/internal/handler"
	"salesapi/internal/middleware"
	"salesapi/internal/repository"
	"salesapi/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           Vendor Sales Reporting API
// @version         1.0
// @description     Read-only reporting API over vendors, products and order sales aggregations.
// @host            localhost:8080
// @BasePath        /
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := godotenv.Load("configs/.env"); err != nil {
		logger.Info("No configs/.env file found or error loading it")
	}

	cfg := config.Load()

	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Database connection failed", zap.Error(err))
	}
	logger.Info("Connected to PostgreSQL successfully.")

	// Set up dependencies (Repository -> Service -> Handler)
	vendorRepo := repository.NewVendorRepository(db)
	productRepo := repository.NewParentProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	vendorService := service.NewVendorService(vendorRepo)
	salesService := service.NewSalesService(vendorRepo, productRepo, orderRepo)

	vendorHandler := handler.NewVendorHandler(vendorService, logger)
	orderHandler := handler.NewOrderHandler(salesService, logger)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Centralized error responder
	router.Use(middleware.ErrorHandler(logger))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Register API Routes
	vendorHandler.RegisterRoutes(router.Group(""))
	orderHandler.RegisterRoutes(router.Group(""))

	logger.Info("Server listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
