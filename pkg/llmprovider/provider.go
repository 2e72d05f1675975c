package llmprovider

import (
	"context"
	"strings"
)

// Provider is one configured inference backend.
type Provider interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "gemini", "qwen")
	Name() string

	Model() string
}

// Request is a provider-neutral generation request.
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	// Temperature is optional; nil leaves the backend default in place.
	Temperature *float64
	MaxTokens   int
	// JSONOutput asks the backend for a JSON object reply when it supports it.
	JSONOutput bool
}

// Message is a conversation turn.
type Message struct {
	Role  string // RoleUser or RoleAssistant
	Parts []Part
}

type Part struct {
	Text string
}

// Response is a provider-neutral generation reply.
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Text joins the text parts of m.
func (m Message) Text() string {
	var b strings.Builder
	for _, p := range m.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

// TextMessage builds a single-part message.
func TextMessage(role, text string) Message {
	return Message{Role: role, Parts: []Part{{Text: text}}}
}
