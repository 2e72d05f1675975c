package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"primering/pkg/response"
)

const HeaderTelegramSecret = "X-Telegram-Bot-Api-Secret-Token"

// TelegramSecret rejects webhook calls whose secret token does not match.
// It is a no-op when no secret is configured.
func (m Middleware) TelegramSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.telegramSecret == "" {
			c.Next()
			return
		}

		got := c.GetHeader(HeaderTelegramSecret)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.telegramSecret)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.TelegramSecret: invalid secret token from %s", extractIP(c.Request))
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
