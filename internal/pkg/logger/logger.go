package logger

import (
	"career-coach/internal/config"

	"go.uber.org/zap"
)

// New builds the process logger. Both modes write to stderr, which keeps stdout
// free for the MCP bridge's protocol stream.
func New(cfg config.AppConfig) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if cfg.IsProduction() {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	return l.Named(cfg.AppName).With(zap.String("env", cfg.Environment)), nil
}
