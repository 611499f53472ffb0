package mocks

import (
	"context"
	"errors"
	"sync"

	"storycrafter/internal/backend"
)

var errNotStubbed = errors.New("mock: call not stubbed")

// StoryBackendMock implements backend.StoryBackend with optional func fields. Calls are
// counted by method name.
type StoryBackendMock struct {
	AuthenticateFunc  func(ctx context.Context, email, password string) (*backend.TokenResponse, error)
	RegisterFunc      func(ctx context.Context, email, password string) (*backend.UserResponse, error)
	MeFunc            func(ctx context.Context, token string) (*backend.UserResponse, error)
	UpdateMeFunc      func(ctx context.Context, token, name string) (*backend.UserResponse, error)
	ListChatsFunc     func(ctx context.Context, token string) ([]backend.ChatResponse, error)
	ListMessagesFunc  func(ctx context.Context, token string, chatID uint) ([]backend.MessageResponse, error)
	CreateChatFunc    func(ctx context.Context, token string, req backend.ChatRequest) (*backend.ChatResponse, error)
	GenerateStoryFunc func(ctx context.Context, token, prompt string) (*backend.GenerateResponse, error)
	ListProjectsFunc  func(ctx context.Context, token string) ([]backend.ProjectResponse, error)
	CreateProjectFunc func(ctx context.Context, token string, req backend.ProjectRequest) (*backend.ProjectResponse, error)

	mu    sync.Mutex
	calls map[string]int
}

var _ backend.StoryBackend = (*StoryBackendMock)(nil)

func (m *StoryBackendMock) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = map[string]int{}
	}
	m.calls[name]++
}

// Calls returns how often the named method was invoked.
func (m *StoryBackendMock) Calls(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

// TotalCalls returns the number of calls across all methods.
func (m *StoryBackendMock) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

func (m *StoryBackendMock) Authenticate(ctx context.Context, email, password string) (*backend.TokenResponse, error) {
	m.record("Authenticate")
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, email, password)
	}
	return nil, errNotStubbed
}

func (m *StoryBackendMock) Register(ctx context.Context, email, password string) (*backend.UserResponse, error) {
	m.record("Register")
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password)
	}
	return nil, errNotStubbed
}

func (m *StoryBackendMock) Me(ctx context.Context, token string) (*backend.UserResponse, error) {
	m.record("Me")
	if m.MeFunc != nil {
		return m.MeFunc(ctx, token)
	}
	return nil, errNotStubbed
}

func (m *StoryBackendMock) UpdateMe(ctx context.Context, token, name string) (*backend.UserResponse, error) {
	m.record("UpdateMe")
	if m.UpdateMeFunc != nil {
		return m.UpdateMeFunc(ctx, token, name)
	}
	return &backend.UserResponse{Name: name}, nil
}

func (m *StoryBackendMock) ListChats(ctx context.Context, token string) ([]backend.ChatResponse, error) {
	m.record("ListChats")
	if m.ListChatsFunc != nil {
		return m.ListChatsFunc(ctx, token)
	}
	return []backend.ChatResponse{}, nil
}

func (m *StoryBackendMock) ListMessages(ctx context.Context, token string, chatID uint) ([]backend.MessageResponse, error) {
	m.record("ListMessages")
	if m.ListMessagesFunc != nil {
		return m.ListMessagesFunc(ctx, token, chatID)
	}
	return []backend.MessageResponse{}, nil
}

func (m *StoryBackendMock) CreateChat(ctx context.Context, token string, req backend.ChatRequest) (*backend.ChatResponse, error) {
	m.record("CreateChat")
	if m.CreateChatFunc != nil {
		return m.CreateChatFunc(ctx, token, req)
	}
	return nil, errNotStubbed
}

func (m *StoryBackendMock) GenerateStory(ctx context.Context, token, prompt string) (*backend.GenerateResponse, error) {
	m.record("GenerateStory")
	if m.GenerateStoryFunc != nil {
		return m.GenerateStoryFunc(ctx, token, prompt)
	}
	return nil, errNotStubbed
}

func (m *StoryBackendMock) ListProjects(ctx context.Context, token string) ([]backend.ProjectResponse, error) {
	m.record("ListProjects")
	if m.ListProjectsFunc != nil {
		return m.ListProjectsFunc(ctx, token)
	}
	return []backend.ProjectResponse{}, nil
}

func (m *StoryBackendMock) CreateProject(ctx context.Context, token string, req backend.ProjectRequest) (*backend.ProjectResponse, error) {
	m.record("CreateProject")
	if m.CreateProjectFunc != nil {
		return m.CreateProjectFunc(ctx, token, req)
	}
	return nil, errNotStubbed
}
