package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

func newGeminiImpl(cfg Config) *geminiImpl {
	return &geminiImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiURL:     cfg.APIURL,
		httpClient: cfg.HTTPClient,
	}
}

func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := g.callAPI(ctx, g.transformRequest(req))
	if err != nil {
		return nil, err
	}
	return transformResponse(resp), nil
}

func (g *geminiImpl) Model() string {
	return g.model
}

func (g *geminiImpl) callAPI(ctx context.Context, req geminiRequest) (*geminiResponse, error) {
	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.apiURL, url.PathEscape(g.model), url.QueryEscape(g.apiKey))

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mimeJSON)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}
	return &result, nil
}

func (g *geminiImpl) transformRequest(req *Request) geminiRequest {
	out := geminiRequest{
		Contents: make([]geminiContent, 0, len(req.Messages)),
	}
	if req.SystemInstruction != nil {
		out.SystemInstruction = &geminiContent{Parts: toWireParts(req.SystemInstruction.Parts)}
	}
	for _, msg := range req.Messages {
		role := msg.Role
		if role == "" {
			role = RoleUser
		}
		out.Contents = append(out.Contents, geminiContent{Role: role, Parts: toWireParts(msg.Parts)})
	}

	if req.Temperature != nil || req.MaxTokens > 0 || req.JSONOutput {
		out.GenerationConfig = &geminiGenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
		if req.JSONOutput {
			out.GenerationConfig.ResponseMimeType = mimeJSON
		}
	}
	return out
}

func toWireParts(parts []Part) []geminiPart {
	out := make([]geminiPart, len(parts))
	for i, p := range parts {
		out[i] = geminiPart{Text: p.Text}
	}
	return out
}

func transformResponse(resp *geminiResponse) *Response {
	out := &Response{Usage: &Usage{}}
	if resp.UsageMetadata != nil {
		out.Usage = &Usage{
			InputTokens:  resp.UsageMetadata.PromptTokenCount,
			OutputTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  resp.UsageMetadata.TotalTokenCount,
		}
	}
	if len(resp.Candidates) == 0 {
		return out
	}

	candidate := resp.Candidates[0]
	parts := make([]Part, len(candidate.Content.Parts))
	for i, p := range candidate.Content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	out.Content = Content{Role: candidate.Content.Role, Parts: parts}
	out.FinishReason = candidate.FinishReason
	return out
}

// Text joins the text parts of the reply.
func (r *Response) Text() string {
	var b bytes.Buffer
	for _, p := range r.Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
