// Package window opens a single native window and reports its input and
// display events as platform-independent Event values.
//
// All calls on a Window must be made from the goroutine that created it; New
// locks that goroutine to its OS thread until Close.
package window

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/tinyrange/evwin/internal/dl"
	"github.com/tinyrange/evwin/internal/gfx"
)

var (
	// ErrContextCreation matches every ContextError.
	ErrContextCreation = errors.New("context creation failed")
	// ErrWindowCreation is returned when the platform refuses to create the
	// window object after its prerequisites were acquired.
	ErrWindowCreation = errors.New("window creation failed")
	// ErrUnsupported is returned by New on platforms without a backend.
	ErrUnsupported = errors.New("no window backend for " + runtime.GOOS)
)

// ContextError reports a failure to acquire a shared resource such as a
// library, the display connection or the window class.
type ContextError struct {
	Reason string
	Err    error
}

func (e *ContextError) Error() string {
	if e.Err == nil {
		return "context creation failed: " + e.Reason
	}
	return "context creation failed: " + e.Reason + ": " + e.Err.Error()
}

func (e *ContextError) Unwrap() error { return e.Err }

func (e *ContextError) Is(target error) bool { return target == ErrContextCreation }

func windowCreationError(cause error) error {
	if cause == nil {
		return ErrWindowCreation
	}
	return fmt.Errorf("%w: %w", ErrWindowCreation, cause)
}

type config struct {
	graphics gfx.Loader
	display  string
	log      *slog.Logger
	system   dl.System
}

// Option configures New.
type Option func(*config)

// WithGraphics requires the loader for l to be installed before the window is
// created. The loader stays open until Close.
func WithGraphics(l gfx.Loader) Option {
	return func(c *config) { c.graphics = l }
}

// WithDisplay selects the X display to connect to. The default is $DISPLAY.
// Other backends ignore it.
func WithDisplay(name string) Option {
	return func(c *config) { c.display = name }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.log = l }
}

func newConfig(opts []Option) *config {
	cfg := &config{
		graphics: gfx.None,
		log:      slog.Default(),
		system:   dl.Native(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// backend is implemented once per platform window system.
type backend interface {
	// pump drains every pending native event into q.
	pump(q *eventQueue)
	size() (width, height int)
	// destroy releases every native resource in reverse acquisition order.
	destroy()
}

// Window is a native top-level window.
type Window struct {
	b      backend
	events eventQueue
	log    *slog.Logger
}

// New creates and shows a window whose drawable area is width by height.
func New(title string, width, height int, opts ...Option) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrWindowCreation, width, height)
	}
	cfg := newConfig(opts)

	runtime.LockOSThread()
	b, err := newBackend(title, width, height, cfg)
	if err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}
	cfg.log.Debug("window created", "title", title, "width", width, "height", height)
	return &Window{b: b, log: cfg.log}, nil
}

// PollEvent drains the native event source and returns the oldest queued
// event. It never blocks; ok is false when no event is queued.
func (w *Window) PollEvent() (ev Event, ok bool) {
	if w.b == nil {
		return nil, false
	}
	w.b.pump(&w.events)
	return w.events.pop()
}

// Size returns the last observed size of the drawable area.
func (w *Window) Size() (width, height int) {
	if w.b == nil {
		return 0, 0
	}
	return w.b.size()
}

// Close destroys the window and releases everything New acquired. Further
// calls do nothing.
func (w *Window) Close() {
	if w.b == nil {
		return
	}
	w.b.destroy()
	w.b = nil
	w.log.Debug("window closed")
	runtime.UnlockOSThread()
}
