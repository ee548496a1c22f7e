package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"fraudmatrix/internal/config"
	"fraudmatrix/internal/scenarios"
	"fraudmatrix/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Optional matrix overrides
	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}
	if yamlCfg != nil {
		yamlCfg.Apply(cfg)
		log.Println("Loaded matrix overrides from config file")
	}

	// Load the dataset once up front. A missing file is not fatal: the
	// dashboard reports it to the user instead.
	store := scenarios.NewStore(cfg.DataFile)
	if table, err := store.Table(); err != nil {
		log.Printf("Warning: scenario dataset unavailable: %v", err)
	} else {
		log.Printf("Loaded %d scenarios from %s", table.Len(), cfg.DataFile)
	}

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, store); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
