package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	ngrokAttempts = 10
	ngrokInterval = 3 * time.Second
)

type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectNgrokURL asks the local ngrok agent for its public URL, preferring https.
// ngrok may still be starting, so unreachable or empty answers are retried.
func detectNgrokURL(ctx context.Context, apiBase string) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= ngrokAttempts; attempt++ {
		tunnels, err := fetchTunnels(ctx, client, apiBase+"/api/tunnels")
		if err != nil {
			lastErr = err
		} else if url := pickTunnel(tunnels); url != "" {
			return url, nil
		} else {
			lastErr = fmt.Errorf("no active tunnels")
		}

		if attempt == ngrokAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(ngrokInterval):
		}
	}

	return "", fmt.Errorf("ngrok not ready after %d attempts: %w", ngrokAttempts, lastErr)
}

func fetchTunnels(ctx context.Context, client *http.Client, url string) ([]ngrokTunnel, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create ngrok API request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode ngrok API response: %w", err)
	}
	return body.Tunnels, nil
}

func pickTunnel(tunnels []ngrokTunnel) string {
	for _, t := range tunnels {
		if t.Proto == "https" {
			return t.PublicURL
		}
	}
	if len(tunnels) > 0 {
		return tunnels[0].PublicURL
	}
	return ""
}
