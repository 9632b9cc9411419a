package window

// eventQueue is a FIFO of translated events.
type eventQueue struct {
	items []Event
	head  int
}

func (q *eventQueue) push(e Event) {
	q.items = append(q.items, e)
}

func (q *eventQueue) pop() (Event, bool) {
	if q.head >= len(q.items) {
		return nil, false
	}
	e := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return e, true
}

func (q *eventQueue) len() int {
	return len(q.items) - q.head
}
