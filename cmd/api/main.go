package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"rent-predictor/internal/config"
	"rent-predictor/internal/database"
	"rent-predictor/internal/handlers"
	"rent-predictor/internal/ml"
	"rent-predictor/internal/prediction"
	"rent-predictor/internal/scheduler"
)

func main() {
	// Load .env if present (connection credentials usually live there)
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	configPath := getEnv("CONFIG_PATH", "config/config.yaml")
	appConfig, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: Failed to load config from %s: %v. Using defaults.", configPath, err)
		appConfig = config.DefaultConfig()
	} else {
		log.Printf("Loaded configuration from %s", configPath)
	}

	// Load the pre-fitted model artifacts once at startup; they are
	// read-only afterwards and shared across requests.
	clusterModel, err := ml.LoadKMeans(
		getEnvOrConfig(appConfig.Models.ClusterPath, "CLUSTER_MODEL_PATH", "models/geo_cluster_kmeans.json"))
	if err != nil {
		log.Fatalf("Failed to load clustering model: %v", err)
	}

	priceModel, err := ml.LoadRegressor(
		getEnvOrConfig(appConfig.Models.PricePath, "PRICE_MODEL_PATH", "models/price_model.json"))
	if err != nil {
		log.Fatalf("Failed to load regression model: %v", err)
	}
	log.Printf("Model artifacts loaded (%d feature columns)", len(priceModel.FeatureNames()))

	// Initialize the prediction store based on configuration
	dbType := appConfig.Database.Type
	if dbType == "" {
		dbType = getEnv("DB_TYPE", "postgres")
	}

	var store database.PredictionStore
	var gormStore *database.GormStore

	if dbType == "mysql" {
		log.Println("Using MySQL with GORM")
		mysqlCfg := appConfig.Database.MySQL

		portStr := ""
		if mysqlCfg.Port > 0 {
			portStr = fmt.Sprintf("%d", mysqlCfg.Port)
		}

		gormStore, err = database.NewGormStore(
			getEnvOrConfig(mysqlCfg.Host, "DB_HOST", "mysql"),
			getEnvOrConfig(portStr, "DB_PORT", "3306"),
			getEnvOrConfig(mysqlCfg.User, "DB_USER", "predictor_user"),
			getEnvOrConfig(mysqlCfg.Password, "DB_PASSWORD", "predictor_pass"),
			getEnvOrConfig(mysqlCfg.Database, "DB_NAME", "rent_predictions"),
		)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer gormStore.Close()

		if err := gormStore.InitSchema(); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}
		store = gormStore
	} else {
		log.Println("Using PostgreSQL")
		pgCfg := appConfig.Database.Postgres

		portStr := ""
		if pgCfg.Port > 0 {
			portStr = fmt.Sprintf("%d", pgCfg.Port)
		}

		pgStore, err := database.NewPostgresStore(
			getEnvOrConfig(pgCfg.Host, "DB_HOST", "localhost"),
			getEnvOrConfig(portStr, "DB_PORT", "5432"),
			getEnvOrConfig(pgCfg.User, "DB_USER", "predictor_user"),
			getEnvOrConfig(pgCfg.Password, "DB_PASSWORD", "predictor_pass"),
			getEnvOrConfig(pgCfg.Database, "DB_NAME", "rent_predictions"),
			getEnvOrConfig(pgCfg.SSLMode, "DB_SSLMODE", "disable"),
		)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pgStore.Close()

		if err := pgStore.InitSchema(); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}
		store = pgStore
	}

	predictionService := prediction.NewService(clusterModel, priceModel, store)
	predictHandler := handlers.NewPredictHandler(predictionService)

	// Daily snapshot scheduler (MySQL/GORM only)
	var appScheduler *scheduler.Scheduler
	if gormStore != nil {
		appScheduler = scheduler.NewScheduler(gormStore.DB(), appConfig)
		if err := appScheduler.Start(); err != nil {
			log.Printf("Warning: Failed to start scheduler: %v", err)
		}
		defer appScheduler.Stop()
	}

	// Setup Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
	}))

	// Routes
	r.GET("/health", predictHandler.Health)
	r.POST("/predict", predictHandler.Predict)

	// Admin API routes (requires authentication in production)
	if gormStore != nil {
		adminHandler := handlers.NewAdminHandler(gormStore.DB(), appScheduler)

		admin := r.Group("/api/admin")
		{
			admin.GET("/stats", adminHandler.GetStats)
			admin.GET("/predictions/recent", adminHandler.GetRecentPredictions)
			admin.POST("/snapshot/run", adminHandler.RunSnapshot)
		}

		log.Println("Admin API routes registered at /api/admin/*")
	}

	port := getEnv("PORT", appConfig.Server.Port)
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvOrConfig prefers the config file value, then the environment, then a
// built-in fallback.
func getEnvOrConfig(configValue, envKey, fallback string) string {
	if configValue != "" {
		return configValue
	}
	return getEnv(envKey, fallback)
}
