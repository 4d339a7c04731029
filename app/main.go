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

	"github.com/lysyi3m/blog-search/app/api"
	"github.com/lysyi3m/blog-search/app/cfg"
	"github.com/lysyi3m/blog-search/app/feed"
	"github.com/lysyi3m/blog-search/app/post"
	"github.com/lysyi3m/blog-search/app/source"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		return
	}

	level := slog.LevelInfo
	if appCfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	slog.Info("Starting Blog Search server", "version", appCfg.Version, "source", appCfg.Source)

	fetchTimeout := source.EffectiveTimeout(appCfg.FetchTimeout)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), fetchTimeout+5*time.Second)
	dataset, err := source.Load(loadCtx, source.Options{
		Kind:      source.Kind(appCfg.Source),
		Path:      appCfg.SourcePath,
		Timeout:   fetchTimeout,
		UserAgent: appCfg.UserAgent,
		HTTPClient: &http.Client{
			Timeout: fetchTimeout,
		},
	})
	cancelLoad()
	if err != nil {
		slog.Error("Failed to load dataset", "error", err)
		os.Exit(1)
	}

	handler := api.NewHandler(
		dataset,
		post.NewFilterer(),
		feed.NewGenerator(appCfg.PreviewLength),
		appCfg.PreviewLength,
		appCfg.BaseUrl,
		appCfg.Version,
	)
	router := api.NewServer(handler, api.ServerOptions{
		APIAccessKey: appCfg.APIAccessKey,
		RateLimit:    appCfg.RateLimit,
		RateBurst:    appCfg.RateBurst,
	})

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port, "posts", dataset.Len())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig)
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Blog Search server shutdown complete")
}
