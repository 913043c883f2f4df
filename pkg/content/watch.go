package content

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the default quiet period before a change event is
// forwarded. Rapid bursts of filesystem events collapse into one refresh.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches a path and coalesces filesystem changes into refresh
// signals. Debouncing lives here so that the pagination core can treat
// every signal as a plain refresh.
type Watcher struct {
	fsw      *fsnotify.Watcher
	events   chan struct{}
	done     chan struct{}
	debounce time.Duration
}

type WatcherOpt func(*Watcher)

// WithDebounce overrides the quiet period.
func WithDebounce(d time.Duration) WatcherOpt {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// NewWatcher starts watching the given path.
func NewWatcher(path string, opts ...WatcherOpt) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(path); err != nil {
		_ = fsw.Close()

		return nil, fmt.Errorf("watch %q: %w", path, err)
	}

	w := &Watcher{
		fsw:      fsw,
		events:   make(chan struct{}, 1),
		done:     make(chan struct{}),
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.loop()

	return w, nil
}

// Events delivers one signal per settled burst of filesystem changes.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	close(w.done)

	if err := w.fsw.Close(); err != nil {
		return fmt.Errorf("close watcher: %w", err)
	}

	return nil
}

func (w *Watcher) loop() {
	var timer *time.Timer

	fire := make(chan struct{}, 1)

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			slog.Debug("filesystem event",
				slog.String("op", event.Op.String()),
				slog.String("name", event.Name),
			)

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}

			slog.Warn("watcher error", slog.Any("err", err))

		case <-fire:
			select {
			case w.events <- struct{}{}:
			default:
				// A refresh is already pending.
			}
		}
	}
}
