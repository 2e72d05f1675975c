package llmprovider

import (
	"context"

	"primering/pkg/gemini"
	"primering/pkg/openai"
)

// GeminiAdapter adapts pkg/gemini to Provider.
type GeminiAdapter struct {
	client gemini.IGemini
}

func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Messages:    make([]gemini.Content, 0, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONOutput:  req.JSONOutput,
	}
	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = &gemini.Content{Parts: toGeminiParts(req.SystemInstruction.Parts)}
	}
	for _, msg := range req.Messages {
		role := gemini.RoleUser
		if msg.Role == RoleAssistant {
			role = gemini.RoleModel
		}
		geminiReq.Messages = append(geminiReq.Messages, gemini.Content{Role: role, Parts: toGeminiParts(msg.Parts)})
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Content:      TextMessage(RoleAssistant, resp.Text()),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *GeminiAdapter) Name() string {
	return "gemini"
}

func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func toGeminiParts(parts []Part) []gemini.Part {
	out := make([]gemini.Part, len(parts))
	for i, p := range parts {
		out[i] = gemini.Part{Text: p.Text}
	}
	return out
}

// ChatCompleter is the pkg/openai client surface used by OpenAIAdapter.
type ChatCompleter interface {
	Complete(ctx context.Context, req openai.Request) (*openai.Response, error)
	Flavour() string
	Model() string
}

// OpenAIAdapter adapts any OpenAI-compatible endpoint (openai, qwen, deepseek, local).
type OpenAIAdapter struct {
	client ChatCompleter
}

func NewOpenAIAdapter(client ChatCompleter) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]openai.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		msgs = append(msgs, openai.Message{Role: "system", Content: req.SystemInstruction.Text()})
	}
	for _, msg := range req.Messages {
		role := msg.Role
		if role == "" {
			role = RoleUser
		}
		msgs = append(msgs, openai.Message{Role: role, Content: msg.Text()})
	}

	resp, err := a.client.Complete(ctx, openai.Request{
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONOutput:  req.JSONOutput,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Content:      TextMessage(RoleAssistant, resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *OpenAIAdapter) Name() string {
	return a.client.Flavour()
}

func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}
