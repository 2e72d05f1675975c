package openai

import (
	"context"
	"errors"
	"fmt"
	"math"

	openaiapi "github.com/sashabaranov/go-openai"
)

// Client talks to any OpenAI-compatible chat-completions endpoint.
type Client struct {
	api     *openaiapi.Client
	flavour string
	model   string
}

// New validates cfg and builds a client.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	apiCfg := openaiapi.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	apiCfg.HTTPClient = cfg.HTTPClient

	return &Client{
		api:     openaiapi.NewClientWithConfig(apiCfg),
		flavour: cfg.Flavour,
		model:   cfg.Model,
	}, nil
}

func (c *Client) Flavour() string { return c.flavour }

func (c *Client) Model() string { return c.model }

// Complete runs a non-streaming chat completion and returns the first choice.
func (c *Client) Complete(ctx context.Context, req Request) (*Response, error) {
	apiReq := openaiapi.ChatCompletionRequest{
		Model:     c.model,
		Messages:  toAPIMessages(req.Messages),
		MaxTokens: req.MaxTokens,
	}
	if req.Temperature != nil {
		apiReq.Temperature = apiTemperature(*req.Temperature)
	}
	if req.JSONOutput {
		apiReq.ResponseFormat = &openaiapi.ChatCompletionResponseFormat{
			Type: openaiapi.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return nil, fmt.Errorf("%s: chat completion: %w", c.flavour, err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New(c.flavour + ": returned empty response")
	}

	choice := resp.Choices[0]
	return &Response{
		Content:      choice.Message.Content,
		FinishReason: string(choice.FinishReason),
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// apiTemperature maps t onto the go-openai field, which omits an exact zero.
// A requested 0 becomes the smallest non-zero float32 so it still reaches the wire.
func apiTemperature(t float64) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(t)
}

func toAPIMessages(msgs []Message) []openaiapi.ChatCompletionMessage {
	res := make([]openaiapi.ChatCompletionMessage, 0, len(msgs))
	for _, m := range msgs {
		res = append(res, openaiapi.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	return res
}
