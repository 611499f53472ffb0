package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storycrafter/internal/backend"
	"storycrafter/internal/services"
)

func (h *Handler) signup(c *gin.Context) {
	var req backend.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	u, err := h.users.Register(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrEmailRegistered):
		h.log.Warn().Str("email", req.Email).Msg("email already registered")
		abortDetail(c, http.StatusConflict, err.Error())
		return
	case err != nil:
		h.log.Error().Err(err).Msg("signup failed")
		abortDetail(c, http.StatusInternalServerError, err.Error())
		return
	}
	SignupsTotal.Inc()
	h.log.Info().Str("email", u.Email).Msg("user created")
	c.JSON(http.StatusOK, toUserResponse(u))
}

// token is the OAuth2 password-grant style login: form fields username and password.
func (h *Handler) token(c *gin.Context) {
	email, password := c.PostForm("username"), c.PostForm("password")
	if email == "" || password == "" {
		abortDetail(c, http.StatusUnprocessableEntity, "username and password are required")
		return
	}

	u, err := h.users.Authenticate(c.Request.Context(), email, password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.Header("WWW-Authenticate", "Bearer")
		abortDetail(c, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		abortDetail(c, http.StatusInternalServerError, err.Error())
		return
	}

	signed, err := h.tokens.Issue(u.Email)
	if err != nil {
		abortDetail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, backend.TokenResponse{AccessToken: signed, TokenType: "bearer", UserID: u.ID})
}

func (h *Handler) me(c *gin.Context) {
	c.JSON(http.StatusOK, toUserResponse(currentUser(c)))
}

func (h *Handler) updateMe(c *gin.Context) {
	var req backend.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	u, err := h.users.UpdateName(c.Request.Context(), currentUser(c).ID, req.Name)
	if err != nil {
		abortDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	c.JSON(http.StatusOK, toUserResponse(u))
}
