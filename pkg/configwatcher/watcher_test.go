package configwatcher

import (
	"context"
	"exam_prep_backend/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ReloadsOnlyValidConfig(t *testing.T) {
	dir := t.TempDir()
	uploads := filepath.Join(dir, "uploads")
	file := filepath.Join(dir, "config.yaml")
	write := func(mode string) {
		body := "server:\n  mode: " + mode + "\njwt:\n  secret: s\nstorage:\n  type: local\n  local_path: " + uploads + "\n"
		require.NoError(t, os.WriteFile(file, []byte(body), 0644))
	}
	write("debug")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 1)
	require.NoError(t, Watch(ctx, dir, func(cfg *config.Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	}))

	// 非法模式校验失败，不回调，保留旧配置
	write("staging")
	select {
	case cfg := <-reloaded:
		t.Fatalf("invalid config was applied: mode %q", cfg.Server.Mode)
	case <-time.After(2500 * time.Millisecond):
	}

	write("test")
	select {
	case cfg := <-reloaded:
		assert.Equal(t, "test", cfg.Server.Mode)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}
}
