package middleware

import (
	"primering/pkg/log"
)

// Config configures the shared middleware set.
type Config struct {
	// RateLimitPerMin is the sustained per-client request rate; 0 disables limiting.
	RateLimitPerMin int
	RateLimitBurst  int

	// DefaultUserID scopes requests that carry no X-User-ID header.
	DefaultUserID string

	// TelegramSecret, when set, must match the X-Telegram-Bot-Api-Secret-Token header.
	TelegramSecret string
}

type Middleware struct {
	l              log.Logger
	limiter        *rateLimiter
	defaultUserID  string
	telegramSecret string
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:              l,
		defaultUserID:  cfg.DefaultUserID,
		telegramSecret: cfg.TelegramSecret,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin, cfg.RateLimitBurst)
	}
	return mw
}
