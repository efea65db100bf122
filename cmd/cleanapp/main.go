package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/rasulkireev/cleanapp/internal/config"
	"github.com/rasulkireev/cleanapp/internal/digest"
	"github.com/rasulkireev/cleanapp/internal/mailer"
	"github.com/rasulkireev/cleanapp/internal/metadata"
	"github.com/rasulkireev/cleanapp/internal/scheduler"
	"github.com/rasulkireev/cleanapp/internal/service"
	"github.com/rasulkireev/cleanapp/internal/sitemap"
	"github.com/rasulkireev/cleanapp/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize email transport
	emailer, err := mailer.NewRabbitMQ(mailer.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer emailer.Close()

	// Initialize stores
	sitemapStore := postgres.NewSitemapStore(db)
	pageStore := postgres.NewPageStore(db)
	accountStore := postgres.NewAccountStore(db)
	digestSendStore := postgres.NewDigestSendStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Initialize the crawl pipeline
	fetcher := sitemap.NewFetcher(cfg.Crawl.FetchTimeout, logger)
	crawler := sitemap.NewCrawler(fetcher, cfg.Crawl.MaxDepth, cfg.Crawl.MaxSitemaps, logger)

	crawlService := service.NewCrawlService(
		sitemapStore,
		pageStore,
		crawler,
		txManager,
		logger,
	)

	// Initialize the digest pipeline
	reviewQueue := service.NewReviewQueue(pageStore, txManager, logger)
	metadataFetcher := metadata.NewFetcher(cfg.Digest.MetadataTimeout, logger)
	policy := digest.NewPolicy(cfg.Digest.SendTime, cfg.Digest.SendTolerance, logger)

	digestService := service.NewDigestService(
		accountStore,
		sitemapStore,
		pageStore,
		reviewQueue,
		digestSendStore,
		emailer,
		metadataFetcher,
		policy,
		cfg.SiteURL,
		logger,
	)

	sched := scheduler.NewScheduler(
		crawlService,
		digestService,
		cfg.Crawl.ReparseInterval,
		cfg.Digest.ScanInterval,
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting review engine",
		"reparse_interval", cfg.Crawl.ReparseInterval,
		"scan_interval", cfg.Digest.ScanInterval,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
