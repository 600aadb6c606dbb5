package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"servidoc/internal/auth"
	"servidoc/internal/config"
	"servidoc/internal/database"
	"servidoc/internal/database/migration"
	handlers "servidoc/internal/http/handler"
	"servidoc/internal/http/middleware"
	"servidoc/internal/otel"
	"servidoc/internal/repository/postgres"
	"servidoc/internal/service"
	"servidoc/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	// Initialize tracing (no-op when OTEL_SDK_DISABLED=true)
	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		_ = shutdownTracing(context.Background())
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	// Create the schema if it is absent
	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Initialize the blob store for uploaded documents
	var store storage.Storage
	switch cfg.Storage.Backend {
	case "s3":
		store, err = storage.NewMinIO(cfg.Storage.S3)
	default:
		store, err = storage.NewLocal(cfg.Storage.UploadDir)
	}
	if err != nil {
		log.Fatalf("failed to initialize blob storage: %v", err)
	}

	// Token signing secret: injected via JWT_SECRET, otherwise generated for
	// this process only — issued tokens then do not survive a restart.
	secret := cfg.Auth.JWTSecret
	if secret == "" {
		secret, err = auth.GenerateSecret()
		if err != nil {
			log.Fatalf("failed to generate signing secret: %v", err)
		}
		log.Println("JWT_SECRET not set; using a process-lifetime random secret")
	}
	tokens := auth.NewTokenIssuer(secret, cfg.Auth.JWTTTLMin)

	// Initialize repositories and services
	userRepo := postgres.NewUserPostgres(db)
	servidorRepo := postgres.NewServidorPostgres(db)
	docRepo := postgres.NewDocumentPostgres(db)

	userSvc := service.NewUserService(userRepo, tokens, cfg.Auth.BcryptCost)
	servidorSvc := service.NewServidorService(servidorRepo)
	docSvc := service.NewDocumentService(store, docRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// Attach the caller's user id when a valid Bearer token is present
	app.Use(middleware.Identity(tokens))
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	// HTTP server spans
	app.Use(otelfiber.Middleware())

	// Request counter + /metrics exposition
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, userSvc, servidorSvc, docSvc)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
