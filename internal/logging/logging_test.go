package logging

import (
	"testing"

	"go-space-invaders/internal/config"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		cfg  config.LoggingConfig
		want zapcore.Level
	}{
		{config.LoggingConfig{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{config.LoggingConfig{Level: "warn", Format: "json"}, zapcore.WarnLevel},
		{config.LoggingConfig{Level: "loud", Format: "console"}, zapcore.InfoLevel},
	}
	for _, tt := range tests {
		log, err := New(tt.cfg)
		if err != nil {
			t.Fatalf("New(%+v): %v", tt.cfg, err)
		}
		if !log.Core().Enabled(tt.want) {
			t.Errorf("New(%+v): level %v not enabled", tt.cfg, tt.want)
		}
		if tt.want > zapcore.DebugLevel && log.Core().Enabled(tt.want-1) {
			t.Errorf("New(%+v): level below %v enabled", tt.cfg, tt.want)
		}
	}
}
