package window

import "testing"

func TestEventQueue_FIFO(t *testing.T) {
	var q eventQueue
	if _, ok := q.pop(); ok {
		t.Fatal("pop on empty queue succeeded")
	}
	q.push(GainFocusEvent{})
	q.push(KeyPressEvent{KeyA})
	if e, _ := q.pop(); e != (GainFocusEvent{}) {
		t.Fatalf("pop = %v", e)
	}
	q.push(CloseEvent{})
	if q.len() != 2 {
		t.Fatalf("len = %d, want 2", q.len())
	}
	if e, _ := q.pop(); e != (KeyPressEvent{KeyA}) {
		t.Fatalf("pop = %v", e)
	}
	if e, _ := q.pop(); e != (CloseEvent{}) {
		t.Fatalf("pop = %v", e)
	}
	if q.len() != 0 || len(q.items) != 0 {
		t.Fatalf("queue not reset: len=%d items=%d", q.len(), len(q.items))
	}
}
