package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"storycrafter/internal/config"
	"storycrafter/internal/database"
	"storycrafter/internal/generator"
	"storycrafter/internal/logging"
	"storycrafter/internal/server"
	"storycrafter/internal/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadServer()
	if err != nil {
		return err
	}
	log := logging.New("storycrafter-api", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Init(database.Config{
		Path:   cfg.DBPath,
		Log:    log,
		Models: database.ServerModels(),
	})
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	mc := generator.ModelConfigFrom(cfg)
	chatModel, err := generator.NewChatModel(ctx, mc)
	if err != nil {
		return fmt.Errorf("init %s model: %w", mc.Provider, err)
	}
	log.Info().Str("provider", mc.Provider).Str("model", mc.Model).Msg("story generator ready")

	svc := services.NewServices(db, generator.NewStoryGenerator(chatModel, log), log)
	srv := server.New(server.Deps{
		Config:   cfg,
		Log:      log,
		Services: svc,
		Tokens:   server.NewTokenIssuer(cfg.SecretKey, cfg.AccessTokenTTL),
	})
	return srv.Run(ctx)
}
