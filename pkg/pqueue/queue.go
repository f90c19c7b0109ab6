package pqueue

import (
	"sort"
)

func WithOrderAsc[T any]() Option[T] {
	return func(q *Queue[T]) {
		q.order = orderAsc
	}
}

func WithOrderDesc[T any]() Option[T] {
	return func(q *Queue[T]) {
		q.order = orderDesc
	}
}

// WithCap bounds the queue: once full, pushing drops the item that sorts
// last.
func WithCap[T any](size uint) Option[T] {
	return func(q *Queue[T]) {
		q.cap = int(size)
	}
}

type Option[T any] func(*Queue[T])

type order uint8

const (
	orderAsc order = iota
	orderDesc
)

type item[T any] struct {
	value T
	prior float64
}

func New[T any](opts ...Option[T]) *Queue[T] {
	q := &Queue[T]{order: orderAsc, cap: -1}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

type Queue[T any] struct {
	order order
	cap   int
	items []item[T]
}

// PopAll empties the queue, returning its values in priority order.
func (q *Queue[T]) PopAll() []T {
	pulled := make([]T, len(q.items))
	for i := range q.items {
		pulled[i] = q.items[i].value
	}
	q.items = q.items[:0]
	return pulled
}

func (q *Queue[T]) Head() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	x := q.items[0]
	q.items = q.items[1:]
	return x.value, true
}

func (q *Queue[T]) Push(val T, priority float64) {
	if q.cap == 0 {
		return
	}
	// stable insert keeps equal priorities in push order
	i := sort.Search(len(q.items), func(i int) bool {
		return q.before(priority, q.items[i].prior)
	})
	if q.cap > 0 && i >= q.cap {
		return
	}
	var zero item[T]
	q.items = append(q.items, zero)
	copy(q.items[i+1:], q.items[i:])
	q.items[i] = item[T]{value: val, prior: priority}
	if q.cap > 0 && len(q.items) > q.cap {
		q.items = q.items[:q.cap]
	}
}

func (q *Queue[T]) before(a, b float64) bool {
	if q.order == orderAsc {
		return a < b
	}
	return a > b
}

func (q *Queue[T]) Cap() int { return q.cap }

func (q *Queue[T]) Len() int { return len(q.items) }

func (q *Queue[T]) Seek(idx int) (T, float64) {
	it := q.items[idx]
	return it.value, it.prior
}
