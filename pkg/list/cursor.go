package list

import "iter"

// cursor walks next links from a starting node. It never writes to the arena.
type cursor[T any] struct {
	list  *List[T]
	at    link
	epoch uint64
	err   error
}

// advance checks the epoch before the end of the chain, so a cursor that has
// run off the tail still notices a later mutation.
func (c *cursor[T]) advance() *node[T] {
	if c.err != nil {
		return nil
	}
	if c.list.epoch != c.epoch {
		c.err, c.at = ErrStaleCursor, none
		return nil
	}
	if c.at == none {
		return nil
	}

	n := c.list.at(c.at)
	c.at = n.next
	return n
}

// Err returns ErrStaleCursor once the cursor has noticed that its list was
// structurally mutated, and nil otherwise.
func (c *cursor[T]) Err() error { return c.err }

// Cursor is a read-only forward cursor.
type Cursor[T any] struct{ cursor[T] }

// Iter returns a cursor positioned at the front of the list.
func (l *List[T]) Iter() *Cursor[T] {
	return &Cursor[T]{cursor[T]{list: l, at: l.head, epoch: l.epoch}}
}

// Next returns the next element. It returns false when the cursor is
// exhausted or stale; check Err to tell the two apart.
func (c *Cursor[T]) Next() (T, bool) {
	n := c.advance()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.elem, true
}

// MutCursor is a forward cursor that hands out pointers to the elements, so
// they can be rewritten in place.
type MutCursor[T any] struct{ cursor[T] }

func (l *List[T]) IterMut() *MutCursor[T] {
	return &MutCursor[T]{cursor[T]{list: l, at: l.head, epoch: l.epoch}}
}

// Next returns a pointer to the next element. The pointer is valid until the
// next structural mutation of the list.
func (c *MutCursor[T]) Next() (*T, bool) {
	n := c.advance()
	if n == nil {
		return nil, false
	}
	return &n.elem, true
}

// All yields the elements front to back. It panics with ErrStaleCursor if the
// list is structurally mutated during the loop.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := l.Iter()
		for v, ok := c.Next(); ok; v, ok = c.Next() {
			if !yield(v) {
				return
			}
		}
		if err := c.Err(); err != nil {
			panic(err)
		}
	}
}

// AllMut is All yielding element pointers.
func (l *List[T]) AllMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		c := l.IterMut()
		for p, ok := c.Next(); ok; p, ok = c.Next() {
			if !yield(p) {
				return
			}
		}
		if err := c.Err(); err != nil {
			panic(err)
		}
	}
}

// Backward yields the elements back to front along prev links.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		epoch := l.epoch
		for i := l.tail; i != none; {
			if l.epoch != epoch {
				panic(ErrStaleCursor)
			}
			n := l.at(i)
			i = n.prev
			if !yield(n.elem) {
				return
			}
		}
	}
}
