package logger

import (
	"exam_prep_backend/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestApplyConfig(t *testing.T) {
	ApplyConfig(&config.Config{Server: config.ServerConfig{Mode: "debug"}})
	assert.Equal(t, zap.DebugLevel, Level())

	ApplyConfig(&config.Config{Server: config.ServerConfig{Mode: "release"}})
	assert.Equal(t, zap.InfoLevel, Level())
}

func TestDefaultLoggerIsUsable(t *testing.T) {
	assert.NotPanics(t, func() {
		Log.Info("before init")
	})
}
