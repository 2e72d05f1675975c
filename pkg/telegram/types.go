package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Parse modes accepted by SendMessageWithMode.
const (
	ModeMarkdown = tgbotapi.ModeMarkdown
	ModeHTML     = tgbotapi.ModeHTML
)

// Update is an incoming webhook update.
type Update = tgbotapi.Update

// Message is a Telegram message.
type Message = tgbotapi.Message

// Sender is the part of Bot used to reply to users.
type Sender interface {
	SendMessage(chatID int64, text string) error
	SendMessageWithMode(chatID int64, text string, parseMode string) error
}
