package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/upb/meeting-summarizer/config"
	"github.com/upb/meeting-summarizer/handlers"
	"github.com/upb/meeting-summarizer/internal/observability"
	"github.com/upb/meeting-summarizer/routes"
	"github.com/upb/meeting-summarizer/services/providers"
	"github.com/upb/meeting-summarizer/services/providers/anthropic"
	"github.com/upb/meeting-summarizer/services/providers/demo"
	"github.com/upb/meeting-summarizer/services/providers/gemini"
	"github.com/upb/meeting-summarizer/services/providers/huggingface"
	"github.com/upb/meeting-summarizer/services/providers/openai"
	"github.com/upb/meeting-summarizer/services/summarize"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Observability.LogLevel, cfg.Observability.LogFormat)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	creds := config.EnvSource{}

	// Fixed preference order: Gemini, OpenAI, Anthropic, Hugging Face.
	// The demo generator is the terminal fallback, not part of the chain.
	chain := []providers.Provider{
		gemini.NewAdapter(providers.ProviderConfig{
			Credentials: creds,
			Model:       cfg.Providers.Gemini.Model,
			Timeout:     cfg.Providers.Gemini.Timeout,
		}, logger),
		openai.NewAdapter(providers.ProviderConfig{
			Credentials: creds,
			Model:       cfg.Providers.OpenAI.Model,
			BaseURL:     cfg.Providers.OpenAI.BaseURL,
			Timeout:     cfg.Providers.OpenAI.Timeout,
		}),
		anthropic.NewAdapter(providers.ProviderConfig{
			Credentials: creds,
			Model:       cfg.Providers.Anthropic.Model,
			BaseURL:     cfg.Providers.Anthropic.BaseURL,
			Timeout:     cfg.Providers.Anthropic.Timeout,
		}),
		huggingface.NewAdapter(providers.ProviderConfig{
			Credentials: creds,
			Model:       cfg.Providers.HuggingFace.Model,
			BaseURL:     cfg.Providers.HuggingFace.BaseURL,
			Timeout:     cfg.Providers.HuggingFace.Timeout,
		}),
	}

	service := summarize.NewService(chain, demo.NewGenerator(), logger)
	summarizeHandler := handlers.NewSummarizeHandler(service, logger)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      routes.SetupRoutes(summarizeHandler, creds),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("server listening",
			zap.String("address", cfg.Server.Address()),
			zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
