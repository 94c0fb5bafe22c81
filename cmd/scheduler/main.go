package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Natim/payment-plan-generator/internal/config"
	"github.com/Natim/payment-plan-generator/internal/repository"
	"github.com/Natim/payment-plan-generator/internal/service"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// The scheduler keeps the Redis quarter cache warm: usury publications
// arrive quarterly into Postgres and are re-cached on a cron spec.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logrus.New()
	log.Info("Starting quarter refresh scheduler...")

	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is required for the scheduler")
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	quarterRepo := repository.NewQuarterRepository(db)
	quoteService := service.NewQuoteService(quarterRepo, redisClient, cfg, log)

	c := cron.New(cron.WithSeconds())

	refresh := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		count, err := quoteService.RefreshQuarterCache(ctx)
		if err != nil {
			log.WithError(err).Error("quarter cache refresh failed")
			return
		}
		log.WithField("quarters", count).Info("quarter cache refreshed")
	}

	if _, err := c.AddFunc(cfg.Scheduler.QuarterRefreshSpec, refresh); err != nil {
		log.Fatalf("Error scheduling quarter refresh job: %v", err)
	}

	// Warm the cache immediately on startup.
	refresh()

	c.Start()
	log.Info("Scheduler started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down scheduler...")
	c.Stop()
	log.Info("Scheduler stopped")
}
