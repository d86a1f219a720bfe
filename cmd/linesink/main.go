package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linesink/internal/config"
	"linesink/internal/constants"
	"linesink/internal/service"
	"linesink/internal/store"
	"linesink/internal/tracing"
	"linesink/pkg/content"
	"linesink/pkg/line"

	"github.com/sirupsen/logrus"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"

	// CLI flags
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	configPath = flag.String("config", "config.json", "Path to configuration file")
	version    = flag.Bool("version", false, "Show version information")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("linesink %s\nBuild Time: %s\nGit Commit: %s\n", Version, BuildTime, GitCommit)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logrus.Fatalf("Application error: %v", err)
	}
}

func run(ctx context.Context) error {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	logger.WithFields(logrus.Fields{
		"version": Version,
		"build":   BuildTime,
		"commit":  GitCommit,
	}).Info("Starting linesink")

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
		logger.Info("Verbose logging enabled")
	} else if cfg.LogLevel != "" {
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			logger.Warnf("Invalid log level %q, defaulting to info", cfg.LogLevel)
			logger.SetLevel(logrus.InfoLevel)
		} else {
			logger.SetLevel(level)
		}
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	// Initialize OpenTelemetry tracing
	tracingManager := tracing.NewManager(cfg.Tracing, logger)
	if err := tracingManager.Initialize(ctx); err != nil {
		logger.Warnf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := tracingManager.Shutdown(context.Background()); err != nil {
			logger.Warnf("Failed to shutdown tracing: %v", err)
		}
	}()

	// Delivery log is optional; an empty path disables it.
	var deliveryLog service.DeliveryLog
	if cfg.Store.Path != "" {
		db, err := store.New(cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("failed to initialize delivery log: %w", err)
		}
		defer db.Close()
		deliveryLog = db
	} else {
		logger.Info("Delivery log is disabled")
	}

	lineClient := line.NewClient(line.ClientConfig{
		APIBaseURL:     cfg.Line.APIBaseURL,
		DataAPIBaseURL: cfg.Line.DataAPIBaseURL,
		ChannelToken:   cfg.Line.ChannelToken,
		Timeout:        time.Duration(cfg.Line.TimeoutSec) * time.Second,
	})

	uris := content.NewURIBuilder(cfg.Server.PublicBaseURL)
	storage, err := content.NewStorage(cfg.Content.DownloadDir, uris, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize content storage: %w", err)
	}
	defer storage.Cleanup()

	gateway := service.NewGateway(lineClient, deliveryLog, logger)
	sequencer := service.NewSequencer(gateway, cfg.Push.TargetID, logger)
	script := service.NewScriptEngine(gateway, sequencer, lineClient, uris, cfg.Push.TargetID, logger)
	pipeline := content.NewPipeline(lineClient, gateway, storage, cfg.Content.ConvertTool, logger)
	dispatcher := service.NewDispatcher(script, pipeline, gateway, logger)

	server := NewServer(cfg.Server, cfg.Line.ChannelSecret, dispatcher, logger, cfg.Content.DownloadDir)
	serverErrCh := make(chan error, constants.ServerErrorChannelSize)
	go func() {
		if err := server.Start(ctx); err != nil {
			serverErrCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	case err := <-serverErrCh:
		logger.Error(err)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(constants.DefaultGracefulShutdownSec)*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server gracefully: %w", err)
	}

	logger.Info("Server shutdown completed")
	return nil
}
