// Package backend is the HTTP client of the Story API.
package backend

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// StoryBackend is the set of Story API calls the client application makes.
type StoryBackend interface {
	Authenticate(ctx context.Context, email, password string) (*TokenResponse, error)
	Register(ctx context.Context, email, password string) (*UserResponse, error)
	Me(ctx context.Context, token string) (*UserResponse, error)
	UpdateMe(ctx context.Context, token, name string) (*UserResponse, error)
	ListChats(ctx context.Context, token string) ([]ChatResponse, error)
	ListMessages(ctx context.Context, token string, chatID uint) ([]MessageResponse, error)
	CreateChat(ctx context.Context, token string, req ChatRequest) (*ChatResponse, error)
	GenerateStory(ctx context.Context, token, prompt string) (*GenerateResponse, error)
	ListProjects(ctx context.Context, token string) ([]ProjectResponse, error)
	CreateProject(ctx context.Context, token string, req ProjectRequest) (*ProjectResponse, error)
}

// Client implements StoryBackend over resty.
type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

var _ StoryBackend = (*Client)(nil)

// NewClient creates a client for the API at baseURL. A zero timeout leaves requests
// bounded only by their context.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	c := &Client{log: log.With().Str("component", "backend").Logger()}
	c.http = resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			r.SetHeader("X-Request-ID", uuid.NewString())
			return nil
		}).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			c.log.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("elapsed", resp.Time()).
				Msg("story api call")
			return nil
		})
	if timeout > 0 {
		c.http.SetTimeout(timeout)
	}
	return c
}

func (c *Client) request(ctx context.Context, token string) *resty.Request {
	r := c.http.R().SetContext(ctx)
	if token != "" {
		r.SetAuthToken(token)
	}
	return r
}

// check turns transport failures and non-2xx responses into the package errors.
func check(resp *resty.Response, err error) error {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.IsError() {
		return &APIError{StatusCode: resp.StatusCode(), Detail: parseDetail(resp.Body())}
	}
	return nil
}

// Authenticate exchanges credentials for a bearer token (form-encoded, OAuth2 password style).
func (c *Client) Authenticate(ctx context.Context, email, password string) (*TokenResponse, error) {
	var out TokenResponse
	resp, err := c.request(ctx, "").
		SetFormData(map[string]string{"username": email, "password": password}).
		SetResult(&out).
		Post("/token")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, email, password string) (*UserResponse, error) {
	var out UserResponse
	resp, err := c.request(ctx, "").
		SetBody(SignupRequest{Email: email, Password: password}).
		SetResult(&out).
		Post("/signup")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context, token string) (*UserResponse, error) {
	var out UserResponse
	resp, err := c.request(ctx, token).SetResult(&out).Get("/users/me")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMe(ctx context.Context, token, name string) (*UserResponse, error) {
	var out UserResponse
	resp, err := c.request(ctx, token).
		SetBody(UpdateUserRequest{Name: name}).
		SetResult(&out).
		Patch("/users/me")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListChats(ctx context.Context, token string) ([]ChatResponse, error) {
	var out []ChatResponse
	resp, err := c.request(ctx, token).SetResult(&out).Get("/chats/")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListMessages(ctx context.Context, token string, chatID uint) ([]MessageResponse, error) {
	var out []MessageResponse
	resp, err := c.request(ctx, token).
		SetPathParam("chatID", strconv.FormatUint(uint64(chatID), 10)).
		SetResult(&out).
		Get("/chats/{chatID}/messages/")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateChat(ctx context.Context, token string, req ChatRequest) (*ChatResponse, error) {
	var out ChatResponse
	resp, err := c.request(ctx, token).SetBody(req).SetResult(&out).Post("/chats/")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GenerateStory(ctx context.Context, token, prompt string) (*GenerateResponse, error) {
	var out GenerateResponse
	resp, err := c.request(ctx, token).
		SetBody(GenerateRequest{Prompt: prompt}).
		SetResult(&out).
		Post("/api/generate-story")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListProjects(ctx context.Context, token string) ([]ProjectResponse, error) {
	var out []ProjectResponse
	resp, err := c.request(ctx, token).SetResult(&out).Get("/projects/")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProject(ctx context.Context, token string, req ProjectRequest) (*ProjectResponse, error) {
	var out ProjectResponse
	resp, err := c.request(ctx, token).SetBody(req).SetResult(&out).Post("/projects/")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}
