package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"storycrafter/internal/backend"
	"storycrafter/internal/config"
	"storycrafter/internal/models"
	"storycrafter/internal/repositories"
)

var ErrProjectNameRequired = errors.New("project name is required")

// ProjectStore decides where projects live. Update and Delete mirror local edits; stores
// without a matching endpoint treat them as no-ops.
type ProjectStore interface {
	Mode() string
	Load(ctx context.Context, sess models.Session) ([]models.Project, error)
	Create(ctx context.Context, sess models.Session, in models.ProjectInput) (models.Project, error)
	Update(ctx context.Context, sess models.Session, p models.Project) error
	Delete(ctx context.Context, sess models.Session, id uint) error
}

// NewProjectStore builds the store for the configured mode. repo is needed for local mode
// and api for remote mode.
func NewProjectStore(mode string, repo repositories.ProjectRepository, api backend.StoryBackend) (ProjectStore, error) {
	switch mode {
	case "", config.ProjectStoreMemory:
		return NewMemoryProjectStore(), nil
	case config.ProjectStoreLocal:
		if repo == nil {
			return nil, errors.New("local project store needs a database")
		}
		return &localProjectStore{projects: repo}, nil
	case config.ProjectStoreRemote:
		if api == nil {
			return nil, errors.New("remote project store needs the story api client")
		}
		return &remoteProjectStore{api: api}, nil
	}
	return nil, fmt.Errorf("unknown project store %q", mode)
}

func normalizeInput(in models.ProjectInput) (models.ProjectInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return in, ErrProjectNameRequired
	}
	return in.Normalized(), nil
}

// memoryProjectStore keeps nothing: projects vanish with the session. Ids are wall-clock
// milliseconds so a fresh run never reuses an id that older server chats are tagged with.
type memoryProjectStore struct {
	mu     sync.Mutex
	lastID uint
	now    func() time.Time
}

func NewMemoryProjectStore() ProjectStore {
	return &memoryProjectStore{now: time.Now}
}

func (s *memoryProjectStore) Mode() string { return config.ProjectStoreMemory }

func (s *memoryProjectStore) Load(context.Context, models.Session) ([]models.Project, error) {
	return nil, nil
}

func (s *memoryProjectStore) Create(_ context.Context, _ models.Session, in models.ProjectInput) (models.Project, error) {
	in, err := normalizeInput(in)
	if err != nil {
		return models.Project{}, err
	}
	s.mu.Lock()
	id := uint(s.now().UnixMilli())
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	s.mu.Unlock()
	return models.Project{ID: id, Name: in.Name, Overview: in.Overview, Type: in.Type, Industry: in.Industry}, nil
}

func (s *memoryProjectStore) Update(context.Context, models.Session, models.Project) error { return nil }
func (s *memoryProjectStore) Delete(context.Context, models.Session, uint) error { return nil }

// localProjectStore persists projects in the client database, one set per user id.
type localProjectStore struct {
	projects repositories.ProjectRepository
}

func (s *localProjectStore) Mode() string { return config.ProjectStoreLocal }

func (s *localProjectStore) Load(ctx context.Context, sess models.Session) ([]models.Project, error) {
	records, err := s.projects.ListByUser(ctx, sess.User.ID)
	if err != nil {
		return nil, fmt.Errorf("list local projects: %w", err)
	}
	out := make([]models.Project, 0, len(records))
	for _, r := range records {
		out = append(out, r.ToProject())
	}
	return out, nil
}

func (s *localProjectStore) Create(ctx context.Context, sess models.Session, in models.ProjectInput) (models.Project, error) {
	in, err := normalizeInput(in)
	if err != nil {
		return models.Project{}, err
	}
	rec := &models.ProjectRecord{
		UserID:   sess.User.ID,
		Name:     in.Name,
		Overview: in.Overview,
		Type:     in.Type,
		Industry: in.Industry,
	}
	if err := s.projects.Create(ctx, rec); err != nil {
		return models.Project{}, fmt.Errorf("save project: %w", err)
	}
	return rec.ToProject(), nil
}

func (s *localProjectStore) Update(ctx context.Context, sess models.Session, p models.Project) error {
	rec, err := s.projects.FindForUser(ctx, sess.User.ID, p.ID)
	if err != nil {
		return fmt.Errorf("find project %d: %w", p.ID, err)
	}
	rec.Name = p.Name
	rec.Overview = p.Overview
	rec.Type = p.Type
	rec.Industry = p.Industry
	return s.projects.Update(ctx, rec)
}

func (s *localProjectStore) Delete(ctx context.Context, sess models.Session, id uint) error {
	return s.projects.Delete(ctx, sess.User.ID, id)
}

// remoteProjectStore lists and creates through the Story API, which offers no rename or
// delete for projects.
type remoteProjectStore struct {
	api backend.StoryBackend
}

func (s *remoteProjectStore) Mode() string { return config.ProjectStoreRemote }

func (s *remoteProjectStore) Load(ctx context.Context, sess models.Session) ([]models.Project, error) {
	list, err := s.api.ListProjects(ctx, sess.Token)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	out := make([]models.Project, 0, len(list))
	for _, p := range list {
		out = append(out, p.ToProject())
	}
	return out, nil
}

func (s *remoteProjectStore) Create(ctx context.Context, sess models.Session, in models.ProjectInput) (models.Project, error) {
	in, err := normalizeInput(in)
	if err != nil {
		return models.Project{}, err
	}
	p, err := s.api.CreateProject(ctx, sess.Token, backend.ProjectRequest{
		Name:     in.Name,
		Overview: in.Overview,
		Type:     in.Type,
		Industry: in.Industry,
	})
	if err != nil {
		return models.Project{}, fmt.Errorf("create project: %w", err)
	}
	return p.ToProject(), nil
}

func (s *remoteProjectStore) Update(context.Context, models.Session, models.Project) error { return nil }
func (s *remoteProjectStore) Delete(context.Context, models.Session, uint) error { return nil }
