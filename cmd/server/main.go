package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/adhilcr/exam-seating/internal/config"     // Internal config loader
	"github.com/adhilcr/exam-seating/internal/database"   // MySQL connection
	"github.com/adhilcr/exam-seating/internal/handler"    // HTTP handlers
	"github.com/adhilcr/exam-seating/internal/middleware" // Redis cache + rate limiter
	"github.com/adhilcr/exam-seating/internal/queue"      // RabbitMQ consumer
	"github.com/adhilcr/exam-seating/internal/repository" // MySQL repositories
	"github.com/adhilcr/exam-seating/internal/router"     // Route registration
)

func main() {
	_ = godotenv.Load() // Best effort; real deployments set env vars directly

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient() // Shared Redis client for cache + rate limiting

	// Repositories over the single *sql.DB.
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	sessions := repository.NewSessionRepo(db)
	registrations := repository.NewRegistrationRepo(db)
	assignments := repository.NewAssignmentRepo(db)

	authHandler := handler.NewAuthHandler(cfg, users, tokens)
	staffHandler := handler.NewStaffHandler(cfg, sessions, registrations, assignments)
	publicHandler := &handler.PublicHandler{SessionRepo: sessions, AssignmentRepo: assignments}

	// The consumer only appends allocation events to the audit log, so a
	// broker outage must not keep the API from starting.
	go func() {
		if err := queue.StartAllocationConsumer(); err != nil {
			log.Printf("queue consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterStaff(e, staffHandler, cfg.JWTSecret)
	router.RegisterPublic(e, publicHandler,
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
