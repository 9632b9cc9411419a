package window

import (
	"slices"
	"testing"
)

func TestTeardown_ReverseOrderOnce(t *testing.T) {
	var got []string
	td := teardown{}
	for _, name := range []string{"library", "display", "window"} {
		td.push(name, func() { got = append(got, name) })
	}
	td.run()
	td.run()

	if want := []string{"window", "display", "library"}; !slices.Equal(got, want) {
		t.Fatalf("release order = %v, want %v", got, want)
	}
}
