package content

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/phrazzld/pattern-catalog/internal/events"
)

// ErrWatcherRunning is returned when Watch is called on a running watcher.
var ErrWatcherRunning = errors.New("content watcher already running")

// Watcher invalidates a Repository whenever a content file changes and
// reports the change to an optional emitter.
type Watcher struct {
	repo    *Repository
	root    string
	dirs    []string
	emitter events.EventEmitter
	logger  *slog.Logger

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWatcher creates a Watcher for the repository's category and pattern
// directories. The emitter may be nil. It does nothing until Watch is called.
func NewWatcher(repo *Repository, emitter events.EventEmitter, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	root := repo.loader.Dir()
	return &Watcher{
		repo: repo,
		root: filepath.Clean(root),
		dirs: []string{
			filepath.Join(root, CategoriesDir),
			filepath.Join(root, PatternsDir),
		},
		emitter: emitter,
		logger:  logger.With(slog.String("component", "content_watcher")),
	}
}

// Watch starts watching in a background goroutine. It returns once the
// directories are registered. The content root must exist; a missing
// category or pattern directory is picked up when it is created. The
// goroutine exits and releases the underlying watcher when ctx is cancelled
// or Close is called.
func (w *Watcher) Watch(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watcher != nil {
		return ErrWatcherRunning
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := fw.Add(w.root); err != nil {
		_ = fw.Close()
		return &LoadError{Path: w.root, Err: err}
	}

	for _, dir := range w.dirs {
		if err := fw.Add(dir); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				w.logger.WarnContext(ctx, "content directory missing, waiting for it to be created",
					slog.String("dir", dir))
				continue
			}
			_ = fw.Close()
			return &LoadError{Path: dir, Err: err}
		}
	}

	w.watcher = fw
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})

	w.logger.InfoContext(ctx, "watching content", slog.Any("dirs", w.dirs))

	go w.run(ctx, fw, w.stopCh, w.doneCh)

	return nil
}

// Close stops the watcher and waits for its goroutine to exit. It is safe to
// call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	fw, stopCh, doneCh := w.watcher, w.stopCh, w.doneCh
	w.watcher, w.stopCh, w.doneCh = nil, nil, nil
	w.mu.Unlock()

	if fw == nil {
		return nil
	}

	close(stopCh)
	<-doneCh

	return nil
}

func (w *Watcher) run(ctx context.Context, fw *fsnotify.Watcher, stopCh, doneCh chan struct{}) {
	defer close(doneCh)
	defer w.release(fw)
	defer func() {
		if err := fw.Close(); err != nil {
			w.logger.Error("failed to close content watcher", slog.Any("error", err))
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			w.handleEvent(ctx, fw, event)
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Error("content watcher error", slog.Any("error", err))
		}
	}
}

// release clears the running state when the goroutine stops on its own, so
// Watch can be called again.
func (w *Watcher) release(fw *fsnotify.Watcher) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watcher == fw {
		w.watcher, w.stopCh, w.doneCh = nil, nil, nil
	}
}

func (w *Watcher) handleEvent(ctx context.Context, fw *fsnotify.Watcher, event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	name := filepath.Clean(event.Name)
	switch {
	case slices.Contains(w.dirs, name):
		if event.Has(fsnotify.Create) {
			if err := fw.Add(name); err != nil {
				w.logger.ErrorContext(ctx, "failed to watch content directory",
					slog.String("dir", name),
					slog.Any("error", err))
			} else {
				w.logger.InfoContext(ctx, "watching new content directory", slog.String("dir", name))
			}
		}
	case strings.EqualFold(filepath.Ext(name), fileExtension) && slices.Contains(w.dirs, filepath.Dir(name)):
	default:
		return
	}

	w.logger.InfoContext(ctx, "content changed",
		slog.String("path", event.Name),
		slog.String("op", event.Op.String()))
	w.repo.Invalidate()

	if w.emitter == nil {
		return
	}
	if err := w.emitter.EmitEvent(ctx, events.NewContentChangedEvent(event.Name, event.Op.String())); err != nil {
		w.logger.WarnContext(ctx, "content change handler failed",
			slog.String("path", event.Name),
			slog.Any("error", err))
	}
}
