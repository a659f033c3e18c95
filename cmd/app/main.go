package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/yifan996/Itinerary/cmd/fx/chat_fx"
	"github.com/yifan996/Itinerary/cmd/fx/config_fx"
	"github.com/yifan996/Itinerary/cmd/fx/controllers_fx"
	"github.com/yifan996/Itinerary/cmd/fx/coze_fx"
	"github.com/yifan996/Itinerary/cmd/fx/db_fx"
	"github.com/yifan996/Itinerary/cmd/fx/itinerary_fx"
	"github.com/yifan996/Itinerary/cmd/fx/logger_fx"
	"github.com/yifan996/Itinerary/cmd/fx/memcache_fx"
	"github.com/yifan996/Itinerary/cmd/fx/profile_fx"
	"github.com/yifan996/Itinerary/cmd/fx/survey_fx"
	"github.com/yifan996/Itinerary/internal/config"
)

// @title TripMate API
// @version 1.0
// @description Itinerary generation, traveller profiles, post-trip surveys and itinerary chat.
// @BasePath /
func main() {
	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		coze_fx.Module,
		itinerary_fx.Module,
		profile_fx.Module,
		survey_fx.Module,
		chat_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, engine *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
