package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/harshjindal13/brainly-fullStack/internal/apperr"

	"github.com/gin-gonic/gin"
)

func (h *Handler) userIdMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"message": "missing Authorization header",
		})
		return
	}

	// Both header shapes are accepted: "Bearer <token>" and the bare
	// token older clients send.
	token := header
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
		token = parts[1]
	}

	userId, err := h.services.ParseToken(token)
	if err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) && ae.Kind == apperr.KindMisconfigured {
			if h.log != nil {
				h.log.Errorw("auth_misconfigured", "err", err)
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message": "internal error",
			})
			return
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"message": "invalid or expired token",
		})
		return
	}

	// store in Gin context
	c.Set(userIDKey, userId)
	c.Next()
}
