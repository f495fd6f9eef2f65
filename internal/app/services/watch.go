package services

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatchDebounce is the debounce window for watcher events.
const ConfigWatchDebounce = 300 * time.Millisecond

// ConfigWatchService watches the config file and signals when it changes.
// The parent directory is watched so that editors replacing the file by
// rename are still seen.
type ConfigWatchService struct {
	Started    bool
	Waiting    bool
	Path       string
	Events     chan struct{}
	Done       chan struct{}
	Mu         sync.Mutex
	Watcher    *fsnotify.Watcher
	LastReload time.Time
	logf       func(string, ...any)
}

// NewConfigWatchService creates a watcher for the config file at path.
func NewConfigWatchService(path string, logf func(string, ...any)) *ConfigWatchService {
	return &ConfigWatchService{
		Path: path,
		logf: logf,
	}
}

// Start initialises the watcher and starts the background goroutine. It
// does nothing when there is no config file.
func (w *ConfigWatchService) Start() (bool, error) {
	if w.Started || w.Path == "" {
		return false, nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return false, err
	}
	if err := watcher.Add(filepath.Dir(w.Path)); err != nil {
		_ = watcher.Close()
		return false, err
	}

	w.Started = true
	w.Watcher = watcher
	w.Events = make(chan struct{}, 1)
	w.Done = make(chan struct{})

	go w.run()
	return true, nil
}

// Stop stops the watcher and closes channels.
func (w *ConfigWatchService) Stop() {
	if !w.Started {
		return
	}
	close(w.Done)
	w.Started = false
	if w.Watcher != nil {
		_ = w.Watcher.Close()
	}
}

// NextEvent returns the event channel if waiting is not already active.
func (w *ConfigWatchService) NextEvent() <-chan struct{} {
	if w.Events == nil || w.Waiting {
		return nil
	}
	w.Waiting = true
	return w.Events
}

// ResetWaiting clears the waiting flag after an event is processed.
func (w *ConfigWatchService) ResetWaiting() {
	w.Waiting = false
}

// ShouldReload checks debounce timing for watcher events.
func (w *ConfigWatchService) ShouldReload(now time.Time) bool {
	w.Mu.Lock()
	defer w.Mu.Unlock()

	if !w.LastReload.IsZero() && now.Sub(w.LastReload) < ConfigWatchDebounce {
		return false
	}
	w.LastReload = now
	return true
}

// Signal notifies listeners of watcher activity.
func (w *ConfigWatchService) Signal() {
	select {
	case <-w.Done:
		return
	default:
	}
	select {
	case w.Events <- struct{}{}:
	default:
	}
}

// IsConfigFile reports whether an event path names the watched file.
func (w *ConfigWatchService) IsConfigFile(path string) bool {
	return path != "" && filepath.Clean(path) == filepath.Clean(w.Path)
}

func (w *ConfigWatchService) run() {
	for {
		select {
		case <-w.Done:
			return
		case event, ok := <-w.Watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !w.IsConfigFile(event.Name) {
				continue
			}
			w.debugf("config watcher: %s %s", event.Op, event.Name)
			w.Signal()
		case err, ok := <-w.Watcher.Errors:
			if !ok {
				return
			}
			w.debugf("config watcher error: %v", err)
		}
	}
}

func (w *ConfigWatchService) debugf(format string, args ...any) {
	if w.logf == nil {
		return
	}
	w.logf(format, args...)
}
