package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storycrafter/internal/backend"
	"storycrafter/internal/models"
)

func (h *Handler) createProject(c *gin.Context) {
	var req backend.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	p := &models.ProjectRecord{
		UserID:   currentUser(c).ID,
		Name:     req.Name,
		Overview: req.Overview,
		Type:     req.Type,
		Industry: req.Industry,
	}
	if err := h.projects.Create(c.Request.Context(), p); err != nil {
		abortDetail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(*p))
}

func (h *Handler) listProjects(c *gin.Context) {
	list, err := h.projects.ListByUser(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		abortDetail(c, http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]backend.ProjectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProjectResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) getProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.projects.FindForUser(c.Request.Context(), currentUser(c).ID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		abortDetail(c, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		abortDetail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(*p))
}

// pathID parses a numeric path parameter, answering 422 when it is not one.
func pathID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		abortDetail(c, http.StatusUnprocessableEntity, name+" must be a positive integer")
		return 0, false
	}
	return uint(v), true
}
