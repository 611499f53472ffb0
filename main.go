package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"

	"storycrafter/internal/config"
	"storycrafter/internal/logging"
	"storycrafter/internal/services"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}
	log := logging.New("storycrafter-desktop", cfg.LogLevel)

	client, err := services.NewClientService(cfg, log, services.ClientOptions{})
	if err != nil {
		log.Error().Err(err).Msg("could not start client services")
		os.Exit(1)
	}
	app := NewApp(client, log)

	err = wails.Run(&options.App{
		Title:  "StoryCrafter Pro",
		Width:  1200,
		Height: 800,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "StoryCrafter Pro",
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		Logger:           logging.NewWailsLogger(log),
		LogLevel:         logger.INFO,
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
			client.Controller,
			client.Db.AppSettings,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("wails exited with an error")
	}
}
