// Command gcal-auth authorizes Google Calendar access for an OAuth desktop
// client and saves the token that event mirroring reads on startup.
//
// Usage:
//
//	go run ./scripts/gcal-auth --credentials google-credentials.json --token token.json
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"primering/pkg/gcalendar"
)

func main() {
	if err := newCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCmd() *cobra.Command {
	var credsPath, tokenPath string

	cmd := &cobra.Command{
		Use:          "gcal-auth",
		Short:        "Authorize Google Calendar and save the OAuth token",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials %q: %w", credsPath, err)
			}
			cfg, err := google.ConfigFromJSON(data, calendar.CalendarScope)
			if err != nil {
				return fmt.Errorf("parse credentials: %w (%q must be an OAuth desktop app credentials file)", err, credsPath)
			}
			return authorize(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), tokenPath)
		},
	}
	cmd.Flags().StringVar(&credsPath, "credentials", "google-credentials.json", "OAuth desktop credentials file")
	cmd.Flags().StringVar(&tokenPath, "token", gcalendar.DefaultTokenPath, "where to write the token (google_calendar.token_path)")
	return cmd
}

func authorize(ctx context.Context, cfg *oauth2.Config, in io.Reader, out io.Writer, tokenPath string) error {
	authURL := cfg.AuthCodeURL("primering", oauth2.AccessTypeOffline)
	fmt.Fprintln(out, "1단계: 브라우저에서 아래 URL을 열고 Google 계정으로 로그인하세요.")
	fmt.Fprintln(out, "Step 1: open this URL and sign in with your Google account.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, authURL)
	fmt.Fprintln(out)
	fmt.Fprint(out, "2단계 / Step 2: 인증 코드를 붙여넣고 Enter (paste the authorization code): ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("read authorization code: %w", err)
	}
	code := strings.TrimSpace(line)
	if code == "" {
		return fmt.Errorf("authorization code is empty")
	}

	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}
	if err := saveToken(tokenPath, tok); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "토큰을 저장했습니다 / token saved: %s\n", tokenPath)
	fmt.Fprintln(out, "서버를 다시 시작하면 Google Calendar 동기화가 켜집니다 (restart the server to enable mirroring).")
	return nil
}

func saveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
