package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/dafatsq/ShuttleBook/internal/clock"
	"github.com/dafatsq/ShuttleBook/internal/config"
	"github.com/dafatsq/ShuttleBook/internal/database"
	"github.com/dafatsq/ShuttleBook/internal/handler"
	"github.com/dafatsq/ShuttleBook/internal/middleware"
	"github.com/dafatsq/ShuttleBook/internal/queue"
	"github.com/dafatsq/ShuttleBook/internal/repository"
	"github.com/dafatsq/ShuttleBook/internal/router"
	"github.com/dafatsq/ShuttleBook/internal/service"
)

func main() {
	_ = godotenv.Load() // optional .env for local development

	cfg := config.Load()

	// Connect the booking store.  An empty URI runs the service in demo
	// mode: availability reads confirmed-empty, writes are rejected.
	var store service.BookingStore
	if cfg.MongoURI != "" {
		client, err := database.Open(cfg.MongoURI)
		if err != nil {
			log.Fatalf("mongo connect: %v", err)
		}
		defer func() { _ = database.Close(client) }()
		store = repository.NewBookingRepo(client.Database(cfg.MongoDB).Collection(cfg.BookingsColl))
	} else {
		log.Printf("MONGODB_URI not set; running in demo mode without a booking store")
	}

	// Trusted clock: periodic drift sync against TIME_URL, or the local
	// clock when unset.
	syncer := clock.NewSyncer(cfg.TimeURL, cfg.SyncEvery)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	syncer.Start(ctx)
	defer syncer.Stop()

	availSvc := service.NewAvailabilityService(store, syncer, cfg.Location, cfg.OpenHour, cfg.CloseHour)
	bookingSvc := service.NewBookingService(store, syncer, availSvc)

	// Redis-backed middleware; both are pass-throughs when Redis is down.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	catalogCache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e,
		handler.NewAvailabilityHandler(availSvc),
		handler.NewBookingHandler(bookingSvc),
		catalogCache,
	)

	// Background consumer appends confirmed bookings to logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
