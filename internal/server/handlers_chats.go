package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storycrafter/internal/backend"
	"storycrafter/internal/models"
	"storycrafter/internal/services"
)

func (h *Handler) createChat(c *gin.Context) {
	var req backend.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	user := currentUser(c)

	// project_id is an opaque tag unless the deployment insists on server-side projects
	if req.ProjectID != nil && h.requireKnownProjects {
		if _, err := h.projects.FindForUser(c.Request.Context(), user.ID, *req.ProjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				abortDetail(c, http.StatusNotFound, "Project not found")
				return
			}
			abortDetail(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	chat := &models.ChatRecord{Title: req.Title, UserID: user.ID, ProjectID: req.ProjectID}
	if err := h.chats.Create(c.Request.Context(), chat); err != nil {
		abortDetail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, toChatResponse(*chat))
}

func (h *Handler) listChats(c *gin.Context) {
	var projectID *uint
	if raw := c.Query("project_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			abortDetail(c, http.StatusUnprocessableEntity, "project_id must be a positive integer")
			return
		}
		id := uint(v)
		projectID = &id
	}

	list, err := h.chats.ListByUser(c.Request.Context(), currentUser(c).ID, projectID)
	if err != nil {
		abortDetail(c, http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]backend.ChatResponse, 0, len(list))
	for _, ch := range list {
		out = append(out, toChatResponse(ch))
	}
	c.JSON(http.StatusOK, out)
}

// ownedChat loads the chat named in the path, answering 404 when the user does not own it.
func (h *Handler) ownedChat(c *gin.Context) (*models.ChatRecord, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return nil, false
	}
	chat, err := h.chats.FindForUser(c.Request.Context(), currentUser(c).ID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		abortDetail(c, http.StatusNotFound, "Chat not found")
		return nil, false
	}
	if err != nil {
		abortDetail(c, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return chat, true
}

func (h *Handler) getChat(c *gin.Context) {
	chat, ok := h.ownedChat(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toChatResponse(*chat))
}

func (h *Handler) createMessage(c *gin.Context) {
	chat, ok := h.ownedChat(c)
	if !ok {
		return
	}
	var req backend.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	isUser := true
	if req.IsUser != nil {
		isUser = *req.IsUser
	}
	msg := &models.ChatMessageRecord{
		ChatID:  chat.ID,
		UserID:  currentUser(c).ID,
		Message: req.Message,
		IsUser:  isUser,
	}
	if err := h.chats.CreateMessage(c.Request.Context(), msg); err != nil {
		abortDetail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, toMessageResponse(*msg))
}

func (h *Handler) listMessages(c *gin.Context) {
	chat, ok := h.ownedChat(c)
	if !ok {
		return
	}
	msgs, err := h.chats.ListMessages(c.Request.Context(), chat.ID)
	if err != nil {
		abortDetail(c, http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]backend.MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toMessageResponse(m))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) generateStory(c *gin.Context) {
	var req backend.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	story, chat, err := h.stories.Generate(c.Request.Context(), currentUser(c).ID, req.Prompt)
	if err != nil {
		GenerationsTotal.WithLabelValues("error").Inc()
		var genErr *services.GenerationError
		if errors.As(err, &genErr) {
			abortDetail(c, http.StatusInternalServerError, "AI model error: "+genErr.Err.Error())
			return
		}
		abortDetail(c, http.StatusInternalServerError, "Unexpected error: "+err.Error())
		return
	}
	GenerationsTotal.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, backend.GenerateResponse{Story: story, ChatID: chat.ID})
}
