package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"github.com/noah-isme/contractor-site-api/internal/config"
	"github.com/noah-isme/contractor-site-api/internal/database"
	"github.com/noah-isme/contractor-site-api/internal/handler"
	"github.com/noah-isme/contractor-site-api/internal/messaging"
	"github.com/noah-isme/contractor-site-api/internal/middleware"
	"github.com/noah-isme/contractor-site-api/internal/repository"
	"github.com/noah-isme/contractor-site-api/internal/router"
	"github.com/noah-isme/contractor-site-api/internal/service"
	"github.com/noah-isme/contractor-site-api/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", cfg.AppName).Logger()

	// A missing or unreachable database is reported by /test instead of stopping the server.
	conn, store, connectErr := openDocumentStore(cfg, logger)

	var contactRepo repository.ContactRepository
	if store != nil {
		contactRepo = repository.NewContactRepository(store)
	}

	var natsConn *nats.Conn
	var delivery service.ContactDelivery = service.NewLogContactDelivery(logger)
	if cfg.NATSURL != "" {
		natsConn, err = messaging.ConnectNATS(cfg.NATSURL, cfg.AppName, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("nats unavailable, contact notifications will be logged only")
		} else {
			delivery = service.NewNATSContactDelivery(natsConn, cfg.ContactNotifySubject, logger)
		}
	}

	validate := utils.NewValidator()

	contentService := service.NewContentService()
	contactService := service.NewContactService(contactRepo, validate, delivery, logger)
	diagnosticsService := service.NewDiagnosticsService(store, connectErr, cfg.DiagnosticsTimeout, logger)

	contentHandler := handler.NewContentHandler(contentService)
	contactHandler := handler.NewContactHandler(contactService, logger)
	diagnosticsHandler := handler.NewDiagnosticsHandler(diagnosticsService, cfg)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{
		Logger:       &logger,
		AllowOrigins: cfg.CORSAllowOrigins,
		AccessLog:    cfg.AppEnv == "development",
	})
	router.Register(app, cfg, router.Dependencies{
		ContentHandler:     contentHandler,
		DiagnosticsHandler: diagnosticsHandler,
		ContactHandler:     contactHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)

	if natsConn != nil {
		if err := natsConn.Drain(); err != nil {
			logger.Warn().Err(err).Msg("failed to drain nats connection")
		}
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.Close(closeCtx); err != nil {
		logger.Warn().Err(err).Msg("failed to close database connection")
	}
}

// openDocumentStore connects to the configured backend. It returns a nil store when the
// database is not configured or connecting failed; connectErr records the failure.
func openDocumentStore(cfg config.Config, logger zerolog.Logger) (*database.Connection, repository.DocumentStore, error) {
	if !cfg.DatabaseConfigured() {
		logger.Warn().Msg("DATABASE_URL not set, contact submissions are disabled")
		return nil, nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DatabaseTimeout)
	defer cancel()

	conn, err := database.Open(ctx, database.Options{
		URL:     cfg.DatabaseURL,
		Name:    cfg.DatabaseName,
		Timeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("failed to connect to database")
		return nil, nil, err
	}

	store, err := repository.NewDocumentStore(conn)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to create document store")
		if closeErr := conn.Close(ctx); closeErr != nil {
			logger.Warn().Err(closeErr).Msg("failed to close database connection")
		}
		return nil, nil, err
	}

	if err := store.Ping(ctx); err != nil {
		logger.Warn().Err(err).Str("database", store.Name()).Msg("database not reachable yet")
	} else {
		logger.Info().Str("driver", string(conn.Driver)).Str("database", store.Name()).Msg("database connected")
	}

	return conn, store, nil
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
