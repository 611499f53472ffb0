package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"storycrafter/internal/backend"
	"storycrafter/internal/config"
	"storycrafter/internal/database"
)

// ClientService wires everything a desktop or terminal client needs: the local database,
// the keyring token store, the Story API client and the controller on top of them.
type ClientService struct {
	DB         *gorm.DB
	Db         *DbServices
	Tokens     TokenStore
	API        *backend.Client
	Projects   ProjectStore
	Controller *ControllerService

	log       zerolog.Logger
	restoring sync.WaitGroup
}

// ClientOptions override pieces of the client wiring. A nil Tokens opens the configured
// keyring.
type ClientOptions struct {
	Tokens     TokenStore
	MinLoading *time.Duration
}

func NewClientService(cfg *config.ClientConfig, log zerolog.Logger, opts ClientOptions) (*ClientService, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = database.GetDefaultDBPath()
	}
	db, err := database.Init(database.Config{
		Path:   dbPath,
		Log:    log,
		Models: database.ClientModels(),
	})
	if err != nil {
		return nil, fmt.Errorf("open client database: %w", err)
	}
	dbs := NewDbServices(db)

	tokens := opts.Tokens
	if tokens == nil {
		ring, err := OpenKeyring(KeyringConfig{
			Backend:  cfg.KeyringBackend,
			Dir:      cfg.KeyringDir,
			Password: cfg.KeyringPassword,
		})
		if err != nil {
			closeDB(db)
			return nil, err
		}
		tokens = NewKeyringService(ring)
	}

	api := backend.NewClient(cfg.APIURL, cfg.RequestTimeout, log)
	projects, err := NewProjectStore(cfg.ProjectStore, dbs.Projects, api)
	if err != nil {
		closeDB(db)
		return nil, err
	}

	minLoading := cfg.MinLoading
	if opts.MinLoading != nil {
		minLoading = *opts.MinLoading
	}
	ctl := NewControllerService(api, tokens, projects, dbs.AppSettings, ControllerOptions{
		MinLoading: minLoading,
		Log:        log,
	})

	log.Debug().
		Str("api", cfg.APIURL).
		Str("db", dbPath).
		Bool("dev", database.IsDevelopment()).
		Str("projects", projects.Mode()).
		Msg("client services ready")

	return &ClientService{
		DB:         db,
		Db:         dbs,
		Tokens:     tokens,
		API:        api,
		Projects:   projects,
		Controller: ctl,
		log:        log,
	}, nil
}

// Startup hands the shell's context to the controller and resumes a stored session.
func (s *ClientService) Startup(ctx context.Context, restore bool) {
	s.Controller.Startup(ctx)
	if !restore {
		return
	}
	s.restore()
}

// StartupInBackground is Startup for shells that must not block while the Story API is
// slow or down. The returned channel closes once the restore attempt has finished; state
// changes reach the views through the controller's events.
func (s *ClientService) StartupInBackground(ctx context.Context) <-chan struct{} {
	s.Controller.Startup(ctx)
	done := make(chan struct{})
	s.restoring.Add(1)
	go func() {
		defer s.restoring.Done()
		defer close(done)
		s.restore()
	}()
	return done
}

func (s *ClientService) restore() {
	if _, err := s.Controller.Restore(); err != nil {
		s.log.Warn().Err(err).Msg("session restore failed")
	}
}

// Close waits for a background restore and closes the database.
func (s *ClientService) Close() error {
	s.restoring.Wait()
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
