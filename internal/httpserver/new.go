package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"primering/internal/analysis"
	"primering/internal/category"
	"primering/internal/diary"
	"primering/internal/event"
	"primering/internal/middleware"
	"primering/internal/quickentry"
	tgDelivery "primering/internal/quickentry/delivery/telegram"
	"primering/pkg/datemath"
	"primering/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	middleware  middleware.Config
	dates       *datemath.Parser

	// Domains
	categoryUC   category.UseCase
	eventUC      event.UseCase
	diaryUC      diary.UseCase
	quickEntryUC quickentry.UseCase
	analysisUC   analysis.UseCase

	// Optional Telegram quick entry
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Config
	// Dates resolves query and body days in the configured timezone.
	Dates *datemath.Parser

	CategoryUC   category.UseCase
	EventUC      event.UseCase
	DiaryUC      diary.UseCase
	QuickEntryUC quickentry.UseCase
	AnalysisUC   analysis.UseCase

	// TelegramHandler is nil when no bot token is configured.
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance and maps its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		middleware:      cfg.Middleware,
		dates:           cfg.Dates,
		categoryUC:      cfg.CategoryUC,
		eventUC:         cfg.EventUC,
		diaryUC:         cfg.DiaryUC,
		quickEntryUC:    cfg.QuickEntryUC,
		analysisUC:      cfg.AnalysisUC,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	if srv.categoryUC == nil || srv.eventUC == nil || srv.diaryUC == nil {
		return errors.New("category, event and diary usecases are required")
	}
	if srv.quickEntryUC == nil || srv.analysisUC == nil {
		return errors.New("quick entry and analysis usecases are required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
