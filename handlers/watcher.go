package handlers

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

// ConfigWatcher calls reload after the config file changes. Bursts of events
// are collapsed into one call once the file has been quiet for the debounce
// period.
type ConfigWatcher struct {
	configPath string
	debounce   time.Duration
	reload     func() error
	log        logr.Logger
	watcher    *fsnotify.Watcher
}

func NewConfigWatcher(configPath string, debounce time.Duration, reload func() error, log logr.Logger) (*ConfigWatcher, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "resolving config path")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating file watcher")
	}

	// Editors often replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "watching %s", filepath.Dir(absPath))
	}

	return &ConfigWatcher{
		configPath: absPath,
		debounce:   debounce,
		reload:     reload,
		log:        log,
		watcher:    watcher,
	}, nil
}

// Run processes file events until ctx is done.
func (cw *ConfigWatcher) Run(ctx context.Context) error {
	defer cw.watcher.Close()

	timer := time.NewTimer(cw.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-cw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != cw.configPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			cw.log.V(1).Info("config file changed", "file", event.Name, "op", event.Op.String())
			timer.Reset(cw.debounce)

		case <-timer.C:
			if err := cw.reload(); err != nil {
				cw.log.Error(err, "reloading configuration, keeping previous one", "file", cw.configPath)
				continue
			}
			cw.log.Info("configuration reloaded", "file", cw.configPath)

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return nil
			}
			cw.log.Error(err, "config watcher error")
		}
	}
}
