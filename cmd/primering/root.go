package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"primering/config"
	"primering/internal/app"
	"primering/internal/model"
	"primering/pkg/log"
)

const version = "0.1.0"

// options are the persistent flags shared by every subcommand.
type options struct {
	configPath string
	userID     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:     "primering",
		Short:   "PrimeRing calendar and diary from the terminal",
		Version: version,
		Long: `Manage PrimeRing events and diary entries without the HTTP server.
Quick-entry text like "내일 오후 2시 미팅" is parsed into a dated, categorized event.`,
		Example: `  # Preview what a quick entry would create
  $ primering parse "다음주 월요일 3시 스터디"

  # Create the event
  $ primering add "내일 오후 2시 미팅"

  # Analyze a stored diary entry
  $ primering analyze --diary 4f1c...`,
		SilenceUsage: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: ./config/config.yaml)")
	root.PersistentFlags().StringVarP(&opts.userID, "user", "u", "", "user scope (default: locale.user_id)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(
		newParseCmd(opts),
		newAddCmd(opts),
		newEventsCmd(opts),
		newDiariesCmd(opts),
		newAnalyzeCmd(opts),
	)
	return root
}

// session is a loaded config plus the wired application.
type session struct {
	app   *app.App
	scope model.Scope
}

func (opts *options) open(ctx context.Context) (*session, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	l := log.NewNop()
	if opts.verbose {
		l = log.Init(log.ZapConfig{
			Level:        cfg.Logger.Level,
			Mode:         cfg.Logger.Mode,
			Encoding:     cfg.Logger.Encoding,
			ColorEnabled: cfg.Logger.ColorEnabled,
		})
	}

	a, err := app.New(ctx, cfg, l)
	if err != nil {
		return nil, err
	}

	userID := opts.userID
	if userID == "" {
		userID = cfg.Locale.UserID
	}
	return &session{app: a, scope: model.ScopeOrDefault(model.Scope{UserID: userID})}, nil
}

func (s *session) close() {
	_ = s.app.Close()
}

// day reads a YYYY-MM-DD flag in the configured timezone. Empty yields the zero time.
func (s *session) day(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return s.app.Dates.ParseDay(value)
}

// window reads --from/--to days. Both are inclusive and empty bounds stay open.
func (s *session) window(from, to string) (time.Time, time.Time, error) {
	start, err := s.day(from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := s.day(to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.IsZero() {
		end = s.app.Dates.EndOfDay(end)
	}
	return start, end, nil
}

// parseNow reads an RFC3339 reference time. Empty yields the zero time.
func parseNow(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q, want RFC3339", value)
	}
	return t, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
