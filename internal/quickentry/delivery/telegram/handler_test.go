package telegram

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"primering/internal/model"
	"primering/internal/quickentry"
	"primering/pkg/log"
)

type sent struct {
	chatID int64
	text   string
}

type mockSender struct {
	mu   sync.Mutex
	msgs []sent
	done chan struct{}
}

func newMockSender() *mockSender {
	return &mockSender{done: make(chan struct{}, 10)}
}

func (m *mockSender) SendMessage(chatID int64, text string) error {
	return m.SendMessageWithMode(chatID, text, "")
}

func (m *mockSender) SendMessageWithMode(chatID int64, text string, parseMode string) error {
	m.mu.Lock()
	m.msgs = append(m.msgs, sent{chatID: chatID, text: text})
	m.mu.Unlock()
	m.done <- struct{}{}
	return nil
}

func (m *mockSender) last() sent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.msgs[len(m.msgs)-1]
}

type mockUseCase struct {
	commitErr error
	found     bool
	gotScope  model.Scope
	gotInput  string
}

func (m *mockUseCase) Preview(ctx context.Context, sc model.Scope, input quickentry.PreviewInput) (quickentry.PreviewOutput, error) {
	m.gotScope, m.gotInput = sc, input.Input
	return quickentry.PreviewOutput{
		Draft: quickentry.ParseResult{Date: time.Date(2024, 5, 2, 14, 0, 0, 0, time.UTC), Title: "회의"},
		Found: m.found,
	}, nil
}

func (m *mockUseCase) Commit(ctx context.Context, sc model.Scope, input quickentry.CommitInput) (quickentry.CommitOutput, error) {
	m.gotScope, m.gotInput = sc, input.Input
	if m.commitErr != nil {
		return quickentry.CommitOutput{}, m.commitErr
	}
	return quickentry.CommitOutput{Event: model.Event{
		ID: "ev-1", Title: "디자인 회의", StartDate: time.Date(2024, 5, 2, 14, 0, 0, 0, time.UTC), CategoryID: "work",
	}}, nil
}

func message(text string) *tgbotapi.Message {
	return &tgbotapi.Message{MessageID: 1, Text: text, Chat: &tgbotapi.Chat{ID: 42}}
}

func TestProcessMessage(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		uc        *mockUseCase
		wantInput string
		wantReply string
	}{
		{name: "Start", text: "/start", uc: &mockUseCase{}, wantReply: "PrimeRing"},
		{name: "Help", text: "/help", uc: &mockUseCase{}, wantReply: "/preview"},
		{name: "Commit", text: "내일 오후 2시 디자인 회의", uc: &mockUseCase{}, wantInput: "내일 오후 2시 디자인 회의", wantReply: "2024-05-02 (Thu) 14:00"},
		{name: "No date", text: "회의", uc: &mockUseCase{commitErr: quickentry.ErrNoDateFound}, wantInput: "회의", wantReply: msgNoDate},
		{name: "Store failure", text: "내일 회의", uc: &mockUseCase{commitErr: errors.New("disk full")}, wantInput: "내일 회의", wantReply: msgFailed},
		{name: "Preview", text: "/preview 내일 오후 2시 회의", uc: &mockUseCase{found: true}, wantInput: "내일 오후 2시 회의", wantReply: "미리보기"},
		{name: "Preview without date", text: "/preview 회의", uc: &mockUseCase{}, wantInput: "회의", wantReply: msgNoDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot := newMockSender()
			h := New(log.NewNop(), tt.uc, bot, "alice").(*handler)

			if err := h.processMessage(context.Background(), message(tt.text)); err != nil {
				t.Fatalf("processMessage: %v", err)
			}
			got := bot.last()
			if got.chatID != 42 || !strings.Contains(got.text, tt.wantReply) {
				t.Errorf("reply = %+v, want it to contain %q", got, tt.wantReply)
			}
			if tt.uc.gotInput != tt.wantInput {
				t.Errorf("input = %q, want %q", tt.uc.gotInput, tt.wantInput)
			}
			if tt.wantInput != "" && tt.uc.gotScope.UserID != "alice" {
				t.Errorf("scope = %+v", tt.uc.gotScope)
			}
		})
	}
}

func TestHandleWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantReply bool
	}{
		{name: "Text message", body: `{"update_id":1,"message":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"},"text":"내일 회의"}}`, wantCode: http.StatusOK, wantReply: true},
		{name: "Non message update", body: `{"update_id":2}`, wantCode: http.StatusOK},
		{name: "Malformed", body: `{"update_id":`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot := newMockSender()
			h := New(log.NewNop(), &mockUseCase{}, bot, "")

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")
			h.HandleWebhook(c)

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantCode)
			}
			if !tt.wantReply {
				return
			}
			select {
			case <-bot.done:
			case <-time.After(2 * time.Second):
				t.Fatal("no reply sent from background processing")
			}
		})
	}
}
