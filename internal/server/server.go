// Package server is the Story API: accounts, projects, chats and story generation over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"storycrafter/internal/config"
	"storycrafter/internal/repositories"
	"storycrafter/internal/services"
)

const shutdownTimeout = 10 * time.Second

// Deps are the collaborators the handlers need.
type Deps struct {
	Config   *config.ServerConfig
	Log      zerolog.Logger
	Services *services.Services
	Tokens   *TokenIssuer
}

// Handler holds the route handlers.
type Handler struct {
	users                services.UserService
	stories              services.StoryService
	projects             repositories.ProjectRepository
	chats                repositories.ChatRepository
	tokens               *TokenIssuer
	requireKnownProjects bool
	log                  zerolog.Logger
}

// HTTPServer wraps the gin engine with graceful shutdown helpers.
type HTTPServer struct {
	addr   string
	engine *gin.Engine
	log    zerolog.Logger
}

// New builds the engine with middleware and routes.
func New(deps Deps) *HTTPServer {
	log := deps.Log.With().Str("component", "http").Logger()

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID(), RequestLogger(log))
	corsCfg := cors.Config{
		AllowOrigins:     deps.Config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", headerReqID},
		ExposeHeaders:    []string{headerReqID, "WWW-Authenticate"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}
	if len(corsCfg.AllowOrigins) == 0 {
		// cors.New panics without any allowed origin
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	engine.Use(cors.New(corsCfg))

	h := &Handler{
		users:                deps.Services.Users,
		stories:              deps.Services.Stories,
		projects:             deps.Services.Projects,
		chats:                deps.Services.Chats,
		tokens:               deps.Tokens,
		requireKnownProjects: deps.Config.RequireKnownProjects,
		log:                  log,
	}
	h.Register(engine)

	return &HTTPServer{addr: deps.Config.Addr, engine: engine, log: log}
}

// Register mounts every route on r.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to StoryCrafter API"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/signup", h.signup)
	r.POST("/token", h.token)

	authed := r.Group("/")
	authed.Use(RequireUser(h.tokens, h.users))

	authed.GET("/users/me", h.me)
	authed.PATCH("/users/me", h.updateMe)

	authed.POST("/projects/", h.createProject)
	authed.GET("/projects/", h.listProjects)
	authed.GET("/projects/:id", h.getProject)

	authed.POST("/chats/", h.createChat)
	authed.GET("/chats/", h.listChats)
	authed.GET("/chats/:id", h.getChat)
	authed.POST("/chats/:id/messages/", h.createMessage)
	authed.GET("/chats/:id/messages/", h.listMessages)

	authed.POST("/api/generate-story", h.generateStory)
}

// Handler exposes the engine, for tests and embedding.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Run starts the HTTP listener and shuts down gracefully when ctx is cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.addr).Msg("story api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.log.Info().Msg("context cancelled, shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
