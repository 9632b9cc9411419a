package window

import "log/slog"

type release struct {
	name string
	fn   func()
}

// teardown records how to release each acquired resource and releases them
// in reverse acquisition order. Each release runs at most once.
type teardown struct {
	log   *slog.Logger
	steps []release
}

func (t *teardown) push(name string, fn func()) {
	t.steps = append(t.steps, release{name: name, fn: fn})
}

func (t *teardown) run() {
	for len(t.steps) > 0 {
		last := t.steps[len(t.steps)-1]
		t.steps = t.steps[:len(t.steps)-1]
		if t.log != nil {
			t.log.Debug("release", "resource", last.name)
		}
		last.fn()
	}
}
