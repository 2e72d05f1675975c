package openai

import (
	"fmt"
	"net/http"
)

// Config configures a chat-completions client.
// An empty BaseURL picks the flavour's endpoint, or api.openai.com for FlavourOpenAI.
type Config struct {
	Flavour    string
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate fills defaults for the flavour.
func (c *Config) Validate() error {
	if c.Flavour == "" {
		c.Flavour = FlavourOpenAI
	}
	if _, ok := defaultModels[c.Flavour]; !ok {
		return fmt.Errorf("openai: unknown flavour %q", c.Flavour)
	}
	// Local servers usually run without auth.
	if c.APIKey == "" && c.Flavour != FlavourLocal {
		return fmt.Errorf("openai: API key is required for %s", c.Flavour)
	}
	if c.Model == "" {
		c.Model = defaultModels[c.Flavour]
	}
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURLs[c.Flavour]
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Message is one chat message; Role is system, user or assistant.
type Message struct {
	Role    string
	Content string
}

type Request struct {
	Messages []Message
	// Temperature is optional; nil keeps the endpoint default.
	Temperature *float64
	MaxTokens   int
	JSONOutput  bool
}

type Response struct {
	Content      string
	FinishReason string
	Usage        Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
