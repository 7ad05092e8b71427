package preset

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Quiet time required after the last change before reloading.
// Editors often write a file in several steps.
const reloadDebounce = 100 * time.Millisecond

// Reloads a preset file whenever it changes on disk.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	logger   *zap.Logger
	onReload func(*Library)
	closeCh  chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

// Starts watching the preset file at the given path. Every time the
// file changes and still loads correctly, onReload is invoked with
// the new library from the watcher's goroutine. Files that fail to
// load are logged and skipped, so the caller keeps its last good
// library.
//
// The watcher stops when the context is canceled or when
// [Watcher.Close]() is called. A nil logger disables logging.
func Watch(ctx context.Context, path string, logger *zap.Logger, onReload func(*Library)) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("preset: watch %s: %w", path, err)
	}

	// the directory is watched rather than the file, since editors
	// often replace files instead of writing them in place
	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("preset: watch %s: %w", path, err)
	}

	watcher := &Watcher{
		watcher:  w,
		path:     path,
		logger:   logger.Named("preset").With(zap.String("path", path)),
		onReload: onReload,
		closeCh:  make(chan struct{}),
	}
	watcher.wg.Add(1)
	go watcher.run(ctx)
	return watcher, nil
}

// Stops watching. After Close returns, onReload won't be invoked
// again. Must not be called from onReload itself.
func (self *Watcher) Close() error {
	var err error
	self.once.Do(func() {
		close(self.closeCh)
		err = self.watcher.Close()
	})
	self.wg.Wait()
	return err
}

func (self *Watcher) run(ctx context.Context) {
	defer self.wg.Done()

	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-self.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != self.path || !isPresetFile(event.Name) {
				continue
			}
			timer.Reset(reloadDebounce)
		case err, ok := <-self.watcher.Errors:
			if !ok {
				return
			}
			self.logger.Warn("preset watcher error", zap.Error(err))
		case <-timer.C:
			self.reload()
		case <-ctx.Done():
			_ = self.watcher.Close()
			return
		case <-self.closeCh:
			return
		}
	}
}

func (self *Watcher) reload() {
	library, err := Load(self.path)
	if err != nil {
		self.logger.Warn("preset reload failed", zap.Error(err))
		return
	}
	self.logger.Info("presets reloaded",
		zap.Int("punches", len(library.Punches)),
		zap.Int("shakes", len(library.Shakes)),
		zap.Int("jumps", len(library.Jumps)),
	)
	if self.onReload != nil {
		self.onReload(library)
	}
}

func isPresetFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
