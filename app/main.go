package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shook-dev/shook/app/api"
	"github.com/shook-dev/shook/app/captions"
	"github.com/shook-dev/shook/app/cfg"
	"github.com/shook-dev/shook/app/database"
	"github.com/shook-dev/shook/app/monitor"
	"github.com/shook-dev/shook/app/slack"
	"github.com/shook-dev/shook/app/summary"
	"github.com/shook-dev/shook/app/youtube"
)

func main() {
	// .env is optional, environment variables win either way
	_ = godotenv.Load()

	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting SHOOK server", "version", appCfg.Version)

	db, err := database.NewConnection(appCfg.DBHost, appCfg.DBPort, appCfg.DBUser,
		appCfg.DBPassword, appCfg.DBName)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "schema_version", version, "dirty", dirty)

	channelRepo := database.NewChannelRepository(db)
	subRepo := database.NewSubscriptionRepository(db)
	videoRepo := database.NewVideoRepository(db)
	userRepo := database.NewUserRepository(db)

	ctx := context.Background()

	ytClient, err := youtube.NewClient(ctx, appCfg.YoutubeAPIKey, appCfg.YoutubeQPS)
	if err != nil {
		slog.Error("Failed to initialize YouTube client", "error", err)
		os.Exit(1)
	}
	feedWatcher := youtube.NewFeedWatcher(appCfg.UserAgent)

	extractor := captions.NewExtractor(&http.Client{Timeout: 30 * time.Second},
		appCfg.UserAgent, appCfg.CaptionLanguage)
	summarizer := summary.NewSummarizer(appCfg.OpenAIAPIKey, appCfg.OpenAIModel, appCfg.SummaryLanguage)
	notifier := slack.NewNotifier(appCfg.SlackBotToken)
	reporter := slack.NewOpsReporter(appCfg.SlackBotToken, appCfg.SlackErrorChannel)

	channelMonitor := monitor.New(channelRepo, subRepo, videoRepo, ytClient, feedWatcher,
		extractor, summarizer, notifier, reporter,
		time.Duration(appCfg.MonitorInterval)*time.Minute, appCfg.WorkerCount)
	channelMonitor.Start()
	defer channelMonitor.Stop()
	slog.Info("Channel monitor started", "interval_minutes", appCfg.MonitorInterval,
		"workers", appCfg.WorkerCount)

	apiHandler := api.NewHandler(channelRepo, subRepo, videoRepo, userRepo, ytClient, channelMonitor)
	server := api.NewServer(apiHandler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port, "api_enabled", appCfg.APIAccessKey != "")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	// Monitor is stopped via defer, in-flight sweep is allowed to finish
	slog.Info("Shutdown complete")
}
