package telegram

import (
	"github.com/gin-gonic/gin"

	"primering/internal/quickentry"
	"primering/pkg/log"
	pkgTelegram "primering/pkg/telegram"
)

// Handler is the Telegram delivery of quick entry.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l      log.Logger
	uc     quickentry.UseCase
	bot    pkgTelegram.Sender
	userID string
}

// New creates the Telegram handler. Messages are committed on behalf of userID.
func New(l log.Logger, uc quickentry.UseCase, bot pkgTelegram.Sender, userID string) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		userID: userID,
	}
}
