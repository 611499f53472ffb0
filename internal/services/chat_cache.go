package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"storycrafter/internal/backend"
	"storycrafter/internal/models"
)

// ChatCache versions chat reloads. Every Invalidate starts a new generation; a reload may
// only apply its result while its generation is still the newest one.
type ChatCache struct {
	mu      sync.Mutex
	version uint64
}

func NewChatCache() *ChatCache {
	return &ChatCache{}
}

// Invalidate marks the cached chat list stale and returns the generation a reload should carry.
func (c *ChatCache) Invalidate() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version++
	return c.version
}

// Current reports whether v is still the newest generation.
func (c *ChatCache) Current(v uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return v == c.version
}

// FetchChats lists the user's chats, then each chat's messages in order. A chat whose
// messages cannot be fetched comes back empty; only a failed chat list is an error.
func FetchChats(ctx context.Context, api backend.StoryBackend, token string, log zerolog.Logger) ([]models.Chat, error) {
	list, err := api.ListChats(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	chats := make([]models.Chat, 0, len(list))
	for _, c := range list {
		msgs, err := api.ListMessages(ctx, token, c.ID)
		if err != nil {
			log.Warn().Err(err).Uint("chat_id", c.ID).Msg("could not load chat messages")
			msgs = nil
		}
		chats = append(chats, c.ToChat(msgs))
	}
	return chats, nil
}
