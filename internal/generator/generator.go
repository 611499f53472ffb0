// Package generator turns product requirements into user stories with an eino chat model.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog"
)

// DeclineMessage is the answer the model is instructed to give for anything that is not a
// product requirement.
const DeclineMessage = "I am a specialist for creating user stories for the product backlog. Please provide a product requirement, and I will help you structure it."

var (
	ErrEmptyPrompt   = errors.New("prompt is required")
	ErrEmptyResponse = errors.New("Empty response from AI model")
)

// Generator produces a user story for one requirement.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// StoryGenerator sends the system prompt and the requirement to a chat model.
type StoryGenerator struct {
	model  model.BaseChatModel
	system string
	log    zerolog.Logger
}

var _ Generator = (*StoryGenerator)(nil)

func NewStoryGenerator(m model.BaseChatModel, log zerolog.Logger) *StoryGenerator {
	return &StoryGenerator{
		model:  m,
		system: SystemPrompt(),
		log:    log.With().Str("component", "generator").Logger(),
	}
}

// WithSystemPrompt replaces the built-in instruction.
func (g *StoryGenerator) WithSystemPrompt(prompt string) *StoryGenerator {
	g.system = prompt
	return g
}

func (g *StoryGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}

	g.log.Debug().Int("prompt_len", len(prompt)).Msg("generating story")
	resp, err := g.model.Generate(ctx, BuildMessages(g.system, prompt))
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", ErrEmptyResponse
	}
	if resp.ResponseMeta != nil && resp.ResponseMeta.Usage != nil {
		g.log.Debug().
			Int("prompt_tokens", resp.ResponseMeta.Usage.PromptTokens).
			Int("completion_tokens", resp.ResponseMeta.Usage.CompletionTokens).
			Msg("story generated")
	}
	return resp.Content, nil
}

// BuildMessages lays out the conversation for one requirement.
func BuildMessages(system, prompt string) []*schema.Message {
	msgs := make([]*schema.Message, 0, 2)
	if strings.TrimSpace(system) != "" {
		msgs = append(msgs, schema.SystemMessage(system))
	}
	return append(msgs, schema.UserMessage("User Request: "+prompt))
}
