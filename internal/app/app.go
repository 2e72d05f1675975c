package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"primering/config"
	"primering/internal/analysis"
	analysisUC "primering/internal/analysis/usecase"
	"primering/internal/category"
	categoryRepo "primering/internal/category/repository/blob"
	categoryUC "primering/internal/category/usecase"
	"primering/internal/diary"
	diaryRepo "primering/internal/diary/repository/blob"
	diaryUC "primering/internal/diary/usecase"
	"primering/internal/event"
	eventRepo "primering/internal/event/repository/blob"
	eventUC "primering/internal/event/usecase"
	"primering/internal/quickentry"
	quickentryUC "primering/internal/quickentry/usecase"
	"primering/pkg/blobstore"
	"primering/pkg/datemath"
	"primering/pkg/gcalendar"
	"primering/pkg/llmprovider"
	"primering/pkg/log"
)

// App is the wired set of usecases shared by the HTTP server and the CLI.
type App struct {
	Location *time.Location
	// Dates resolves calendar days in the configured timezone.
	Dates *datemath.Parser

	Categories category.UseCase
	Events     event.UseCase
	Diaries    diary.UseCase
	QuickEntry quickentry.UseCase
	Analysis   analysis.UseCase

	// LLM is nil when no provider could be initialized.
	LLM *llmprovider.Manager

	store blobstore.Gateway
}

// New wires storage, the optional integrations and every usecase.
// Google Calendar and the language model are optional: a failure to set them
// up is logged and the feature stays disabled.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	store, err := blobstore.New(blobstore.Config{
		Driver:     cfg.Storage.Driver,
		DataDir:    cfg.Storage.DataDir,
		SQLitePath: cfg.Storage.SQLitePath,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	l.Infof(ctx, "Storage: driver=%s", cfg.Storage.Driver)

	dateParser, err := datemath.NewParser(cfg.Locale.Timezone)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Locale.Timezone, err)
		dateParser, _ = datemath.NewParser("UTC")
	}

	locale, err := loadLocale(cfg.Locale)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("locale: %w", err)
	}
	parser, err := quickentry.NewParser(locale, dateParser)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("quick entry parser: %w", err)
	}

	a := &App{Location: dateParser.Location(), Dates: dateParser, store: store}

	a.Categories = categoryUC.New(categoryRepo.New(store, l), l)
	a.Events = eventUC.New(l, eventRepo.New(store, l), newCalendar(ctx, cfg.GoogleCalendar, l), cfg.GoogleCalendar.CalendarID, cfg.Locale.Timezone)
	a.Diaries = diaryUC.New(l, diaryRepo.New(store, l), a.Location)
	a.QuickEntry = quickentryUC.New(l, parser, a.Categories, a.Events, a.Location)

	if len(cfg.LLM.Providers) > 0 {
		a.LLM, err = llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, l)
		if err != nil {
			l.Warnf(ctx, "Diary analysis disabled: %v", err)
		} else {
			l.Infof(ctx, "LLM providers: %v", a.LLM.Providers())
		}
	} else {
		l.Info(ctx, "Diary analysis disabled: no LLM providers configured")
	}

	cacheTTL, err := time.ParseDuration(cfg.Analysis.CacheTTL)
	if err != nil && cfg.Analysis.CacheTTL != "" {
		l.Warnf(ctx, "Invalid analysis.cache_ttl %q, using default: %v", cfg.Analysis.CacheTTL, err)
	}
	var gen analysis.Generator
	if a.LLM != nil {
		gen = a.LLM
	}
	temperature := cfg.Analysis.Temperature
	a.Analysis = analysisUC.New(l, a.Diaries, gen, analysisUC.Config{
		Temperature: &temperature,
		MaxTokens:   cfg.Analysis.MaxTokens,
		DateLayout:  cfg.Analysis.DateLayout,
		CacheSize:   cfg.Analysis.CacheSize,
		CacheTTL:    cacheTTL,
	})

	return a, nil
}

// Close releases the storage gateway.
func (a *App) Close() error {
	return a.store.Close()
}

func loadLocale(cfg config.LocaleConfig) (quickentry.Locale, error) {
	if cfg.File != "" {
		return quickentry.LoadLocale(cfg.File)
	}
	return quickentry.LocaleByName(cfg.QuickEntry)
}

// newCalendar returns nil when Google Calendar is not configured or unusable.
func newCalendar(ctx context.Context, cfg config.GoogleCalendarConfig, l log.Logger) gcalendar.Calendar {
	if cfg.CredentialsPath == "" {
		return nil
	}

	client, err := newCalendarClient(ctx, cfg)
	if err != nil {
		l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		l.Warn(ctx, "Run `go run ./scripts/gcal-auth` to generate the OAuth token")
		return nil
	}
	l.Info(ctx, "Google Calendar mirroring enabled")
	return client
}

func newCalendarClient(ctx context.Context, cfg config.GoogleCalendarConfig) (*gcalendar.Client, error) {
	if cfg.TokenPath == "" {
		return gcalendar.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath)
	}
	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return gcalendar.NewClientWithToken(ctx, data, cfg.TokenPath)
}
