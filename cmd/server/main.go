package main

import (
	"context"
	"errors"
	"log"

	"career-coach/internal/app"
	"career-coach/internal/config"
	"career-coach/internal/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.New(cfg.App)
}

func newContainer(lc fx.Lifecycle, cfg config.Config, l *zap.Logger) (*app.Container, error) {
	c, err := app.NewContainer(cfg, l)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return c.Close() },
	})
	return c, nil
}

func registerServer(lc fx.Lifecycle, sd fx.Shutdowner, a *app.App, cfg config.Config, l *zap.Logger) error {
	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				l.Info("http server listening", zap.String("addr", addr))
				if err := a.Fiber.Listen(addr); err != nil {
					l.Error("http server stopped", zap.Error(err))
					_ = sd.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			l.Info("http server shutting down")
			return a.Fiber.ShutdownWithContext(ctx)
		},
	})
	return nil
}

func main() {
	fxApp := fx.New(
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Named("fx")}
		}),
		fx.Provide(
			config.Load,
			newLogger,
			newContainer,
			app.New,
		),
		fx.Invoke(registerServer),
	)

	if err := fxApp.Err(); err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancel()
	if err := fxApp.Start(startCtx); err != nil {
		log.Fatalf("failed to start app: %v", err)
	}

	sig := <-fxApp.Wait()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer stopCancel()
	if err := fxApp.Stop(stopCtx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("shutdown error: %v", err)
	}
	if sig.ExitCode != 0 {
		log.Fatalf("exited with code %d", sig.ExitCode)
	}
}
