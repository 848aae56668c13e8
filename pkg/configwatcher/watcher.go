package configwatcher

import (
	"context"
	"exam_prep_backend/internal/config"
	"exam_prep_backend/pkg/logger"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

type ConfigReloader func(cfg *config.Config)

// Watch 监听配置目录，写入事件防抖 1 秒后重新加载；ctx 取消时退出
func Watch(ctx context.Context, configDir string, reloader ConfigReloader) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	absPath, err := filepath.Abs(configDir)
	if err != nil {
		watcher.Close()
		return err
	}

	// 监听目录而不是文件，编辑器的 rename-写入也能捕获
	if err := watcher.Add(absPath); err != nil {
		watcher.Close()
		return err
	}

	go loop(ctx, watcher, absPath, reloader)
	return nil
}

func loop(ctx context.Context, watcher *fsnotify.Watcher, dir string, reloader ConfigReloader) {
	defer watcher.Close()

	timer := time.NewTimer(time.Hour)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != "config.yaml" {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				timer.Reset(time.Second)
			}
		case <-timer.C:
			newCfg, err := config.LoadConfig(dir)
			if err != nil {
				logger.Log.Error("Failed to reload config", zap.Error(err))
				continue
			}
			logger.Log.Info("Config reloaded", zap.String("dir", dir))
			reloader(newCfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Log.Error("Config watcher error", zap.Error(err))
		}
	}
}
