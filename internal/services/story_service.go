package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"storycrafter/internal/generator"
	"storycrafter/internal/models"
	"storycrafter/internal/repositories"
)

// GenerationError marks a failure of the story generator itself, as opposed to storage.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string { return e.Err.Error() }
func (e *GenerationError) Unwrap() error { return e.Err }

// StoryService turns a requirement into a story and records the exchange as a new chat.
type StoryService interface {
	Generate(ctx context.Context, userID uint, prompt string) (string, *models.ChatRecord, error)
}

type storyService struct {
	gen   generator.Generator
	chats repositories.ChatRepository
	now   func() time.Time
	log   zerolog.Logger
}

func NewStoryService(gen generator.Generator, chats repositories.ChatRepository, log zerolog.Logger) StoryService {
	return &storyService{
		gen:   gen,
		chats: chats,
		now:   time.Now,
		log:   log.With().Str("component", "stories").Logger(),
	}
}

// Generate asks the model first and stores nothing unless it answered. The chat is titled
// after the UTC time of the request.
func (s *storyService) Generate(ctx context.Context, userID uint, prompt string) (string, *models.ChatRecord, error) {
	started := s.now().UTC()
	story, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.log.Error().Err(err).Uint("user_id", userID).Msg("story generation failed")
		return "", nil, &GenerationError{Err: err}
	}

	chat := &models.ChatRecord{
		Title:  "Chat " + started.Format("2006-01-02 15:04"),
		UserID: userID,
	}
	msgs := []models.ChatMessageRecord{
		{UserID: userID, Message: prompt, IsUser: true, CreatedAt: started},
		{UserID: userID, Message: story, IsUser: false, CreatedAt: s.now().UTC()},
	}
	if err := s.chats.CreateWithMessages(ctx, chat, msgs); err != nil {
		return "", nil, err
	}
	s.log.Info().Uint("user_id", userID).Uint("chat_id", chat.ID).Msg("story generated and saved")
	return story, chat, nil
}
