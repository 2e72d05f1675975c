package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot is the Telegram Bot API client.
type Bot struct {
	api *tgbotapi.BotAPI
}

// NewBot creates a Bot for token. It calls getMe to verify the token.
func NewBot(token string) (*Bot, error) {
	return NewBotWithEndpoint(token, tgbotapi.APIEndpoint)
}

// NewBotWithEndpoint creates a Bot against a custom API endpoint
// (format "<base>/bot%s/%s"), e.g. a local Bot API server or a test server.
func NewBotWithEndpoint(token, endpoint string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &Bot{api: api}, nil
}

// Username returns the bot's username as reported by getMe.
func (b *Bot) Username() string {
	return b.api.Self.UserName
}

// SetWebhook registers the webhook URL with Telegram. A non-empty secret is
// echoed back by Telegram in the X-Telegram-Bot-Api-Secret-Token header.
func (b *Bot) SetWebhook(webhookURL, secret string) error {
	params := tgbotapi.Params{"url": webhookURL}
	params.AddNonEmpty("secret_token", secret)

	if _, err := b.api.MakeRequest("setWebhook", params); err != nil {
		return fmt.Errorf("telegram setWebhook failed: %w", err)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(chatID int64, text string) error {
	return b.SendMessageWithMode(chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
func (b *Bot) SendMessageWithMode(chatID int64, text string, parseMode string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = parseMode
	msg.DisableWebPagePreview = true

	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("telegram sendMessage failed: %w", err)
	}
	return nil
}
