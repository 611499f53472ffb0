package backend

import (
	"strconv"
	"time"

	"storycrafter/internal/models"
)

// TokenResponse is the body of a successful POST /token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      uint   `json:"user_id"`
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type UpdateUserRequest struct {
	Name string `json:"name" binding:"required"`
}

type ProjectRequest struct {
	Name     string `json:"name" binding:"required"`
	Overview string `json:"overview"`
	Type     string `json:"type"`
	Industry string `json:"industry"`
}

type ProjectResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Name      string    `json:"name"`
	Overview  string    `json:"overview"`
	Type      string    `json:"type"`
	Industry  string    `json:"industry"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ChatRequest struct {
	Title     string `json:"title" binding:"required"`
	ProjectID *uint  `json:"project_id"`
}

type ChatResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	ProjectID *uint     `json:"project_id"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MessageRequest struct {
	Message string `json:"message" binding:"required"`
	IsUser  *bool  `json:"is_user"`
}

type MessageResponse struct {
	ID        uint      `json:"id"`
	ChatID    uint      `json:"chat_id"`
	UserID    uint      `json:"user_id"`
	Message   string    `json:"message"`
	IsUser    bool      `json:"is_user"`
	CreatedAt time.Time `json:"created_at"`
}

type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type GenerateResponse struct {
	Story  string `json:"story"`
	ChatID uint   `json:"chat_id"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

func (p ProjectResponse) ToProject() models.Project {
	return models.Project{ID: p.ID, Name: p.Name, Overview: p.Overview, Type: p.Type, Industry: p.Industry}
}

func (c ChatResponse) ToChat(messages []MessageResponse) models.Chat {
	chat := models.Chat{ID: c.ID, Title: c.Title, ProjectID: c.ProjectID, Messages: []models.Message{}}
	for _, m := range messages {
		chat.Messages = append(chat.Messages, m.ToMessage())
	}
	return chat
}

func (m MessageResponse) ToMessage() models.Message {
	return models.Message{
		ID:        strconv.FormatUint(uint64(m.ID), 10),
		Text:      m.Message,
		IsUser:    m.IsUser,
		Timestamp: m.CreatedAt,
	}
}

func (u UserResponse) ToUser() models.User {
	return models.User{ID: u.ID, Email: u.Email, Name: u.Name}
}
