package logger_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/yifan996/Itinerary/internal/config"
	"github.com/yifan996/Itinerary/pkg/logger"
)

var Module = fx.Provide(provideLogger)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	l, err := logger.New(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	restore := zap.ReplaceGlobals(l)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			restore()
			// Sync fails on stdout/stderr on some platforms; nothing to do about it.
			_ = l.Sync()
			return nil
		},
	})
	return l, nil
}
