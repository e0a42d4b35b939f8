package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"career-coach/internal/config"
	"career-coach/internal/infrastructure/coachclient"
	"career-coach/internal/mcp"
	"career-coach/internal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	backendURL := flag.String("backend", "", "backend base URL (overrides BACKEND_URL)")
	maxInFlight := flag.Int("concurrency", 8, "max concurrent tool calls")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *backendURL != "" {
		cfg.Backend.URL = *backendURL
	}

	l, err := logger.New(cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	l = l.Named("mcp")
	defer func() { _ = l.Sync() }()

	client, err := coachclient.New(cfg.Backend, l)
	if err != nil {
		l.Fatal("failed to init backend client", zap.Error(err))
	}

	reg := mcp.NewRegistry()
	mcp.RegisterCoachTools(reg, client)
	srv := mcp.NewServer(reg, l, *maxInFlight)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l.Info("mcp bridge started", zap.String("backend", cfg.Backend.URL))

	// stdin reads do not observe ctx, so a signal ends the process without
	// waiting for the reader.
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			l.Error("mcp bridge stopped", zap.Error(err))
			os.Exit(1)
		}
		l.Info("mcp bridge finished")
	case <-ctx.Done():
		l.Info("mcp bridge interrupted")
	}
}
