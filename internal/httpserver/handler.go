package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	analysisHTTP "primering/internal/analysis/delivery/http"
	categoryHTTP "primering/internal/category/delivery/http"
	diaryHTTP "primering/internal/diary/delivery/http"
	eventHTTP "primering/internal/event/delivery/http"
	"primering/internal/middleware"
	"primering/internal/model"
	quickentryHTTP "primering/internal/quickentry/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.middleware)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery(), mw.RequestID())
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.Use(gin.Logger())
	}

	srv.l.Infof(context.Background(), "HTTP mode: %s, environment: %s", srv.mode, srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	categoryHTTP.RegisterRoutes(api.Group("/categories"), categoryHTTP.New(srv.l, srv.categoryUC), mw)
	eventHTTP.RegisterRoutes(api.Group("/events"), eventHTTP.New(srv.l, srv.eventUC), mw)
	diaryHTTP.RegisterRoutes(api.Group("/diaries"), diaryHTTP.New(srv.l, srv.diaryUC, srv.dates), mw)
	quickentryHTTP.RegisterRoutes(api.Group("/quick-entry"), quickentryHTTP.New(srv.l, srv.quickEntryUC), mw)
	analysisHTTP.RegisterRoutes(api, analysisHTTP.New(srv.l, srv.analysisUC, srv.dates), mw)
	srv.l.Infof(ctx, "Domain routes registered under /api/v1")

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", mw.TelegramSecret(), srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}
}
