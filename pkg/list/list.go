// Package list implements a generic doubly-linked list.
//
// Nodes live in an arena owned by the List and are addressed by stable
// indices, so prev/next links are plain integers and a released slot is
// recycled through a free list. Cursors are views into that arena; any
// structural mutation (push, pop, take, RemoveIf, Clear, Close) makes every
// cursor created before it stale.
//
// A List is not safe for concurrent use.
package list

import (
	"github.com/rs/zerolog"
)

// Finalizer is implemented by elements that need a hook when the list
// releases them. Finalize runs exactly once per element removed by a pop,
// RemoveIf, Clear or Close.
type Finalizer interface {
	Finalize()
}

// List is a doubly-linked list. The zero value is an empty list ready to use;
// its zero logger sits at debug level, so slot tracing stays silent.
type List[T any] struct {
	nodes      []node[T]
	free       []link
	head, tail link
	len        int

	// epoch is bumped by every structural mutation.
	epoch uint64

	finalize func(T)
	log      zerolog.Logger
}

type Option[T any] func(*List[T])

// WithFinalizer sets the function run on every element the list releases.
// It takes precedence over a Finalize method on T.
func WithFinalizer[T any](f func(T)) Option[T] {
	return func(l *List[T]) { l.finalize = f }
}

// WithLogger traces slot allocation and release at trace level. Without it
// the list logs to zerolog.Nop().
func WithLogger[T any](log zerolog.Logger) Option[T] {
	return func(l *List[T]) { l.log = log }
}

func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// PushFront inserts v at the front of the list.
func (l *List[T]) PushFront(v T) { l.linkBetween(v, none, l.head) }

// PushBack inserts v at the back of the list.
func (l *List[T]) PushBack(v T) { l.linkBetween(v, l.tail, none) }

// PopFront removes and finalizes the first element. It is a no-op on an
// empty list.
func (l *List[T]) PopFront() {
	if l.head != none {
		l.drop(l.head)
	}
}

// PopBack removes and finalizes the last element. It is a no-op on an empty
// list.
func (l *List[T]) PopBack() {
	if l.tail != none {
		l.drop(l.tail)
	}
}

// TakeFront removes the first element and hands it to the caller without
// finalizing it.
func (l *List[T]) TakeFront() (T, bool) {
	if l.head == none {
		var zero T
		return zero, false
	}
	return l.unlink(l.head), true
}

// TakeBack removes the last element and hands it to the caller without
// finalizing it.
func (l *List[T]) TakeBack() (T, bool) {
	if l.tail == none {
		var zero T
		return zero, false
	}
	return l.unlink(l.tail), true
}

func (l *List[T]) Front() (T, bool) {
	if l.head == none {
		var zero T
		return zero, false
	}
	return l.at(l.head).elem, true
}

func (l *List[T]) Back() (T, bool) {
	if l.tail == none {
		var zero T
		return zero, false
	}
	return l.at(l.tail).elem, true
}

func (l *List[T]) IsEmpty() bool { return l.head == none }

func (l *List[T]) Len() int { return l.len }

// Clear removes and finalizes every element, front to back. Clearing an
// empty list does nothing. A finalizer that mutates the list makes Clear
// panic with ErrConcurrentMutation; the list is still valid afterwards.
func (l *List[T]) Clear() {
	for l.head != none {
		epoch := l.epoch
		l.drop(l.head)
		if l.epoch != epoch+1 {
			panic(ErrConcurrentMutation)
		}
	}
	// no live slots remain, so the arena can be reused from the start
	l.nodes = l.nodes[:0]
	l.free = l.free[:0]
}

// Close clears the list and drops its backing storage. The list remains
// usable as an empty list, so it is safe to defer Close right after New.
func (l *List[T]) Close() {
	l.Clear()
	l.nodes = nil
	l.free = nil
}
