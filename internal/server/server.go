package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"lgasportal/internal/config"
	"lgasportal/internal/database"
	"lgasportal/internal/handlers"
	"lgasportal/internal/repositories"
	"lgasportal/internal/routes"
	"lgasportal/internal/services"
)

func NewServer() *http.Server {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	pool, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	// Fail fast with a clear message if Redis is unreachable.
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect to Redis at %s: %v", cfg.RedisAddr, err)
		}
		log.Println("Connected to Redis successfully")
	}

	// Dependency injection
	profileRepo := repositories.NewProfileRepository(pool)
	cylinderRepo := repositories.NewCylinderRepository(pool)
	batchRepo := repositories.NewBatchRepository(pool)
	penaltyRepo := repositories.NewPenaltyRepository(pool)
	redisRepo := repositories.NewRedisRepository(rdb)

	authService := services.NewAuthService(profileRepo, redisRepo, cfg.AccessTokenSecret, cfg.RefreshTokenSecret)
	fleetService := services.NewFleetService(cylinderRepo, redisRepo, cfg.FleetCacheTTL, cfg.Timezone)
	batchService := services.NewBatchService(batchRepo, redisRepo, cfg.Timezone)
	inventoryService := services.NewInventoryService(cylinderRepo, penaltyRepo, redisRepo)

	authHandler := handlers.NewAuthHandler(authService)
	fleetHandler := handlers.NewFleetHandler(fleetService)
	batchHandler := handlers.NewBatchHandler(batchService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(router, authService, authHandler, fleetHandler, batchHandler, inventoryHandler)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
