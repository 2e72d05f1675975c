package log_test

import (
	"context"
	"testing"

	"primering/pkg/log"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{name: "development console", cfg: log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true}},
		{name: "production json", cfg: log.ZapConfig{Level: "info", Mode: "production", Encoding: "json"}},
		{name: "unknown level", cfg: log.ZapConfig{Level: "loud", Mode: "production", Encoding: "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			if l == nil {
				t.Fatal("Init returned nil logger")
			}
			ctx := context.WithValue(context.Background(), log.RequestIDKey{}, "req-1")
			l.Debugf(ctx, "debug %d", 1)
			l.Info(ctx, "info")
		})
	}
}

func TestNewNop(t *testing.T) {
	l := log.NewNop()
	l.Infof(context.Background(), "nothing %s", "here")
}
