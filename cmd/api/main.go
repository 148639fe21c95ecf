package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	statsHttp "link-analytics-service/internal/analytics/adapters/http/fiber"
	statsRepoSQL "link-analytics-service/internal/analytics/adapters/sqlstore"
	statsUsecase "link-analytics-service/internal/analytics/core/usecase"

	clicksHttp "link-analytics-service/internal/clicks/adapters/http/fiber"
	clicksRepoSQL "link-analytics-service/internal/clicks/adapters/sqlstore"
	clicksUsecase "link-analytics-service/internal/clicks/core/usecase"

	linksHttp "link-analytics-service/internal/links/adapters/http/fiber"
	linksRepoSQL "link-analytics-service/internal/links/adapters/sqlstore"
	linksUsecase "link-analytics-service/internal/links/core/usecase"

	"link-analytics-service/internal/config"
	"link-analytics-service/internal/logger"
	"link-analytics-service/internal/platform/database"
	"link-analytics-service/internal/platform/sqldb"

	"github.com/gofiber/fiber/v2"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "link-analytics-service/docs"
)

// @title Link Analytics Service
// @version 1.0
// @description Short links, click ingestion and per-link click analytics for a URL shortener.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	logger.Setup(os.Stderr, cfg.LogLevel)

	// DB connection
	openCtx, cancelOpen := context.WithTimeout(context.Background(), 10*time.Second)
	db, driver, err := database.Open(openCtx, cfg.DatabaseURL)
	cancelOpen()
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	logger.Info("database ready", "driver", driver)

	// Statement timeouts; *sql.DB already satisfies the click writer
	queryDB := sqldb.New(db, cfg.StatsQueryTimeout)

	// Repositories
	linkRepository := linksRepoSQL.NewLinkRepository(queryDB)
	clickRepository := clicksRepoSQL.NewClickRepository(db)
	clickReader := statsRepoSQL.NewClickReader(queryDB)

	// Usecases
	linkUC := linksUsecase.NewLinkUseCase(linkRepository)
	recordClickUC := clicksUsecase.NewRecordClickUseCase(clickRepository)
	getLinkStatsUC := statsUsecase.NewGetLinkStatsUseCase(linkRepository, clickReader, cfg.DefaultWindow, cfg.HourBucketTZ)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		AppName:               "link-analytics-service",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(fiberLogger.New())

	// link endpoints
	linksHandler := linksHttp.NewLinkHandler(linkUC)
	app.Post("/url/shorten", linksHandler.CreateLink)
	app.Get("/url", linksHandler.GetLink)
	app.Patch("/url/custom-url", linksHandler.RenameLink)
	app.Delete("/url/delete", linksHandler.DeleteLink)

	// click endpoints
	clicksHandler := clicksHttp.NewClickHandler(recordClickUC)
	app.Post("/clicks", clicksHandler.CreateClick)
	app.Post("/clicks/bulk", clicksHandler.BulkCreateClicks)

	// stats endpoints
	statsHandler := statsHttp.NewStatsHandler(getLinkStatsUC)
	app.Get("/url/stats", statsHandler.GetStats)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := db.PingContext(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("fiber stopped", "err", err)
		}
	}()

	logger.Info("server started", "port", cfg.Port, "default_window", cfg.DefaultWindow, "hour_tz", cfg.HourBucketTZ.String())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit

	logger.Warn("shutdown signal received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("fiber shutdown error", "err", err)
	}

	logger.Info("server exiting")
}
