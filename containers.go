package keypad

// Queue is a FIFO queue.
type Queue[T any] struct {
	q []T
}

// NewQueue returns a queue holding in, front first.
func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{q: in}
}

// Push appends v to the back of the queue.
func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

// Pop removes and returns the front value. It reports false when the
// queue is empty.
func (q *Queue[T]) Pop() (v T, ok bool) {
	if len(q.q) == 0 {
		return v, false
	}
	v, q.q = q.q[0], q.q[1:]
	return v, true
}

// While pops values and passes them to f until the queue is empty or f
// returns false.
func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok || !f(v) {
			return
		}
	}
}
