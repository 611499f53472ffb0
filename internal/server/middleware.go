package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"storycrafter/internal/models"
	"storycrafter/internal/services"
)

const (
	ctxUser      = "user"
	ctxRequestID = "request_id"
	headerReqID  = "X-Request-ID"
)

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerReqID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(headerReqID, id)
		c.Next()
	}
}

// RequestLogger writes one zerolog line per request and feeds the request metrics.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)
		RequestsTotal.WithLabelValues(c.Request.Method, endpoint, strconv.Itoa(status)).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(elapsed.Seconds())

		ev := log.Info()
		if status >= http.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("request_id", c.GetString(ctxRequestID)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("elapsed", elapsed).
			Msg("request")
	}
}

// RequireUser rejects requests without a valid bearer token and stores the account in the
// gin context.
func RequireUser(tokens *TokenIssuer, users services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := extractToken(c)
		if raw == "" {
			unauthorized(c)
			return
		}
		email, err := tokens.Subject(raw)
		if err != nil {
			unauthorized(c)
			return
		}
		u, err := users.GetByEmail(c.Request.Context(), email)
		if err != nil {
			if !errors.Is(err, services.ErrUserNotFound) {
				abortDetail(c, http.StatusInternalServerError, err.Error())
				return
			}
			unauthorized(c)
			return
		}
		c.Set(ctxUser, u)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.EqualFold(bearerToken[:7], "Bearer ") {
		return strings.TrimSpace(bearerToken[7:])
	}
	return ""
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	abortDetail(c, http.StatusUnauthorized, ErrInvalidToken.Error())
}

func currentUser(c *gin.Context) *models.UserAccount {
	u, _ := c.MustGet(ctxUser).(*models.UserAccount)
	return u
}
