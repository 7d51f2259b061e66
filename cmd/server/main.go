package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/osimagekit/image-definitions/internal/config"
	"github.com/osimagekit/image-definitions/internal/infra/tracing"
	"github.com/osimagekit/image-definitions/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("load config", zap.Error(err))
	}

	injector := server.BuildInjector(cfg)
	defer injector.Shutdown()

	log := server.MustLogger(injector)
	defer log.Sync()

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.Init(context.Background(), cfg)
		if err != nil {
			log.Fatal("init tracing", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				log.Warn("tracing shutdown", zap.Error(err))
			}
		}()
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: server.NewRouter(injector),
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
}
