package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/oauth2"
)

func TestAuthorize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.Form.Get("code") != "abc123" {
			http.Error(w, "bad code", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","refresh_token":"rt","token_type":"Bearer","expires_in":3600}`))
	}))
	defer srv.Close()

	cfg := &oauth2.Config{
		ClientID:     "id",
		ClientSecret: "secret",
		Endpoint:     oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token"},
	}
	tokenPath := filepath.Join(t.TempDir(), "token.json")

	var out bytes.Buffer
	if err := authorize(context.Background(), cfg, strings.NewReader("abc123\n"), &out, tokenPath); err != nil {
		t.Fatalf("authorize() error = %v", err)
	}
	if !strings.Contains(out.String(), srv.URL+"/auth") {
		t.Errorf("auth URL not printed: %s", out.String())
	}

	data, err := os.ReadFile(tokenPath)
	if err != nil {
		t.Fatalf("read token: %v", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		t.Fatalf("decode token: %v", err)
	}
	if tok.AccessToken != "at" || tok.RefreshToken != "rt" {
		t.Errorf("token = %+v", tok)
	}
}

func TestAuthorize_EmptyCode(t *testing.T) {
	cfg := &oauth2.Config{Endpoint: oauth2.Endpoint{AuthURL: "http://example.invalid/auth"}}
	err := authorize(context.Background(), cfg, strings.NewReader("\n"), &bytes.Buffer{}, filepath.Join(t.TempDir(), "t.json"))
	if err == nil {
		t.Fatal("expected an error for an empty code")
	}
}
