package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"primering/internal/model"
	"primering/internal/quickentry"
	"primering/pkg/response"
	pkgTelegram "primering/pkg/telegram"
)

// HandleWebhook answers Telegram with 200 right away and processes the
// message in the background with a detached context.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Warnf(ctx, "telegram.HandleWebhook: failed to parse update: %v", err)
		response.Error(c, errWrongBody)
		return
	}

	if update.Message == nil || update.Message.Chat == nil || update.Message.Text == "" {
		response.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		bgCtx := context.WithoutCancel(ctx)
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram.HandleWebhook: processMessage failed: %v", err)
		}
	}()

	response.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single text message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	switch {
	case text == cmdStart:
		return h.bot.SendMessageWithMode(chatID, msgWelcome, pkgTelegram.ModeMarkdown)
	case text == cmdHelp:
		return h.bot.SendMessageWithMode(chatID, msgHelp, pkgTelegram.ModeMarkdown)
	case strings.HasPrefix(text, cmdPreview):
		return h.preview(ctx, chatID, strings.TrimSpace(strings.TrimPrefix(text, cmdPreview)))
	}

	out, err := h.uc.Commit(ctx, h.scope(), quickentry.CommitInput{Input: text})
	if err != nil {
		if errors.Is(err, quickentry.ErrNoDateFound) || errors.Is(err, quickentry.ErrEmptyInput) {
			return h.bot.SendMessage(chatID, msgNoDate)
		}
		h.l.Errorf(ctx, "telegram.processMessage: uc.Commit: %v", err)
		return h.bot.SendMessage(chatID, msgFailed)
	}

	reply := fmt.Sprintf("📅 일정을 등록했습니다.\n\n*%s*\n🕑 %s\n🏷 %s",
		out.Event.Title,
		out.Event.StartDate.Format(replyTimeLayout),
		out.Event.CategoryID,
	)
	return h.bot.SendMessageWithMode(chatID, reply, pkgTelegram.ModeMarkdown)
}

func (h *handler) preview(ctx context.Context, chatID int64, text string) error {
	out, err := h.uc.Preview(ctx, h.scope(), quickentry.PreviewInput{Input: text})
	if err != nil {
		h.l.Errorf(ctx, "telegram.preview: uc.Preview: %v", err)
		return h.bot.SendMessage(chatID, msgFailed)
	}
	if !out.Found {
		return h.bot.SendMessage(chatID, msgNoDate)
	}

	category := out.Draft.CategoryID
	if category == "" {
		category = "-"
	}
	reply := fmt.Sprintf("👀 미리보기\n\n*%s*\n🕑 %s\n🏷 %s",
		out.Draft.Title,
		out.Draft.Date.Format(replyTimeLayout),
		category,
	)
	return h.bot.SendMessageWithMode(chatID, reply, pkgTelegram.ModeMarkdown)
}

func (h *handler) scope() model.Scope {
	return model.ScopeOrDefault(model.Scope{UserID: h.userID})
}
