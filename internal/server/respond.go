package server

import (
	"github.com/gin-gonic/gin"

	"storycrafter/internal/backend"
	"storycrafter/internal/models"
)

func abortDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, backend.ErrorResponse{Detail: detail})
}

func toUserResponse(u *models.UserAccount) backend.UserResponse {
	return backend.UserResponse{ID: u.ID, Email: u.Email, Name: u.Name}
}

func toProjectResponse(p models.ProjectRecord) backend.ProjectResponse {
	return backend.ProjectResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Name:      p.Name,
		Overview:  p.Overview,
		Type:      p.Type,
		Industry:  p.Industry,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toChatResponse(ch models.ChatRecord) backend.ChatResponse {
	return backend.ChatResponse{
		ID:        ch.ID,
		Title:     ch.Title,
		ProjectID: ch.ProjectID,
		UserID:    ch.UserID,
		CreatedAt: ch.CreatedAt,
		UpdatedAt: ch.UpdatedAt,
	}
}

func toMessageResponse(m models.ChatMessageRecord) backend.MessageResponse {
	return backend.MessageResponse{
		ID:        m.ID,
		ChatID:    m.ChatID,
		UserID:    m.UserID,
		Message:   m.Message,
		IsUser:    m.IsUser,
		CreatedAt: m.CreatedAt,
	}
}
