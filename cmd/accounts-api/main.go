package main

import (
	"database/sql"
	"log"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DuDupedrosa/krt-bank/internal/account/cache"
	"github.com/DuDupedrosa/krt-bank/internal/account/handler"
	"github.com/DuDupedrosa/krt-bank/internal/account/repository"
	"github.com/DuDupedrosa/krt-bank/internal/account/service"
	"github.com/DuDupedrosa/krt-bank/internal/config"
	"github.com/DuDupedrosa/krt-bank/internal/events"
	"github.com/DuDupedrosa/krt-bank/internal/metrics"
	"github.com/DuDupedrosa/krt-bank/internal/middleware"
	redisclient "github.com/DuDupedrosa/krt-bank/internal/redis"
)

func main() {
	cfg := config.Load()

	// Durable store (source of truth)
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	// Snapshot cache
	redis, err := redisclient.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	// --- wiring ---
	repo := repository.NewAccountRepository(db)
	accountCache := cache.NewAccountCache(redis.Client, cfg.CacheTTL)
	publisher := events.NewPublisher(cfg.AMQPURL)
	m := metrics.New(prometheus.DefaultRegisterer)

	accountSvc := service.NewAccountService(repo, accountCache, publisher, m)
	accountHandler := handler.NewAccountHandler(accountSvc)

	// --- router ---
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1/accounts")
	if cfg.AuthEnabled {
		v1.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	}
	accountHandler.Register(v1)

	log.Printf("Accounts API starting on port %s", cfg.HTTPPort)
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
