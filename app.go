package main

import (
	"context"

	"github.com/rs/zerolog"

	"storycrafter/internal/events"
	"storycrafter/internal/models"
	"storycrafter/internal/services"
)

// App carries the desktop shell's lifecycle hooks and the few bindings that are not
// controller operations.
type App struct {
	ctx    context.Context
	client *services.ClientService
	log    zerolog.Logger
}

func NewApp(client *services.ClientService, log zerolog.Logger) *App {
	return &App{client: client, log: log}
}

// startup is called when the app starts. The window shows the home page right away; a
// stored session moves it to the dashboard once the Story API answers.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	events.EnableRuntimeEmitter()
	a.client.StartupInBackground(ctx)
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	events.SetCustomEmitter(nil)
	if err := a.client.Close(); err != nil {
		a.log.Error().Err(err).Msg("failed to close database")
		return
	}
	a.log.Info().Msg("database closed")
}

// ProjectTypes lists the options of the new-project form.
func (a *App) ProjectTypes() []string {
	return models.ProjectTypes
}

// ProjectStoreMode tells the frontend whether projects survive a restart.
func (a *App) ProjectStoreMode() string {
	return a.client.Projects.Mode()
}
