package platform

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// ThemeWatcher следит за файлом темы и сообщает мосту об изменениях
type ThemeWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	bridge  *Bridge
	logger  logrus.FieldLogger
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
}

// WatchTheme начинает наблюдение. Следим за директорией, так как редакторы
// часто сохраняют файл через rename.
func WatchTheme(ctx context.Context, bridge *Bridge, path string, logger logrus.FieldLogger) (*ThemeWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = watcher.Close()
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	tw := &ThemeWatcher{
		watcher: watcher,
		path:    abs,
		bridge:  bridge,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	go tw.watchLoop()

	return tw, nil
}

// Close останавливает наблюдение и ждет выхода из цикла
func (tw *ThemeWatcher) Close() error {
	tw.cancel()
	err := tw.watcher.Close()
	<-tw.done
	return err
}

// watchLoop главный цикл наблюдения
func (tw *ThemeWatcher) watchLoop() {
	defer close(tw.done)
	for {
		select {
		case <-tw.ctx.Done():
			return
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != tw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			tw.reload()
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			tw.logger.WithError(err).Warn("theme watcher error")
		}
	}
}

func (tw *ThemeWatcher) reload() {
	tf, err := LoadThemeFile(tw.path)
	if err != nil {
		tw.logger.WithError(err).WithField("path", tw.path).Warn("theme reload failed")
		return
	}
	tw.bridge.SetTheme(tf.ColorScheme, tf.Params)
}
