package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hilbertsen/teamcal/internal/config"
	"github.com/hilbertsen/teamcal/internal/logging"
	"github.com/hilbertsen/teamcal/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)

	services, err := server.NewServices(cfg.Server.Password, 0)
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	srv := server.New(cfg, services, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("server starting", "addr", addr, "auth", cfg.Auth)
		if err := srv.Run(ctx, addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
}
