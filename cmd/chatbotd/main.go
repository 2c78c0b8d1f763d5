package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/tailored-agentic-units/chatbot/bot"
	"github.com/tailored-agentic-units/chatbot/observability"
	"github.com/tailored-agentic-units/chatbot/server"
	"github.com/tailored-agentic-units/chatbot/users"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to config JSON file (optional)")
		addr       = flag.String("addr", "", "Listen address (overrides config)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		quiet      = flag.Bool("quiet", false, "Disable event logging")
	)
	flag.Parse()

	// Missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	var observer observability.Observer = observability.NewSlogObserver(logger)
	if *quiet {
		observer = observability.NoOpObserver{}
	}

	cfg, err := bot.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	engine, err := bot.New(cfg, bot.WithObserver(observer))
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	srvCfg := server.DefaultConfig()
	if err := env.Parse(&srvCfg); err != nil {
		log.Fatalf("Failed to parse server environment: %v", err)
	}
	if *addr != "" {
		srvCfg.Addr = *addr
	}

	srv := server.New(&srvCfg, engine, users.NewRegistry(), server.WithObserver(observer))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("chatbot server listening", "addr", srvCfg.Addr)
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
		}
	}

	logger.Info("server stopped")
}
