package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// secretTokenHeader is the header Telegram attaches to webhook calls
// when the webhook was registered with a secret_token.
const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// TelegramSecret rejects webhook requests that do not carry the
// configured secret token. When no secret is configured the check is
// skipped so local setups without a secret keep working.
func (m Middleware) TelegramSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.webhookSecret == "" {
			c.Next()
			return
		}

		got := c.GetHeader(secretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.webhookSecret)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware: rejected webhook call with bad secret token from %s", c.ClientIP())
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Next()
	}
}
