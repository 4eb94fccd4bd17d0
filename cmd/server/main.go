package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httpadapter "cv-builder/internal/adapter/http"
	"cv-builder/internal/app"
	"cv-builder/internal/config"
	"cv-builder/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Must(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	// documents go straight back to the client and are never kept on disk
	a, err := app.Build(cfg, log, "")
	if err != nil {
		log.Fatal("startup failed", zap.Error(err))
	}

	srv := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.Server.BodyLimit,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})
	httpadapter.NewHandler(a.Processor, a.Registry, a.Service, log.Named("http")).Register(srv)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Info("listening", zap.String("addr", addr), zap.String("engine", cfg.Renderer.Engine))
		if err := srv.Listen(addr); err != nil {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutting down")
	if err := srv.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}
