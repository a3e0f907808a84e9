package list

// link is a 1-based index into the arena.
type link int

const none link = 0

type node[T any] struct {
	elem       T
	prev, next link
	used       bool
}

func (l *List[T]) at(i link) *node[T] { return &l.nodes[i-1] }

func (l *List[T]) live(i link) bool {
	return i > none && int(i) <= len(l.nodes) && l.nodes[i-1].used
}

// alloc stores v in a free slot, or a new one when the free list is empty.
// The node is complete before any existing link points at it.
func (l *List[T]) alloc(v T, prev, next link) link {
	n := node[T]{elem: v, prev: prev, next: next, used: true}

	var i link
	if k := len(l.free); k > 0 {
		i = l.free[k-1]
		l.free = l.free[:k-1]
		l.nodes[i-1] = n
	} else {
		l.nodes = append(l.nodes, n)
		i = link(len(l.nodes))
	}

	l.len++
	l.epoch++
	l.log.Trace().Int("slot", int(i)).Int("len", l.len).Msg("list: alloc")
	return i
}

// release frees slot i and returns its element. The caller must already have
// unlinked the node.
func (l *List[T]) release(i link) T {
	n := l.at(i)
	v := n.elem
	*n = node[T]{}
	l.free = append(l.free, i)

	l.len--
	l.epoch++
	l.log.Trace().Int("slot", int(i)).Int("len", l.len).Msg("list: release")
	return v
}

// linkBetween inserts a new node holding v between prev and next, either of
// which may be none, and moves head or tail when the node lands on an end.
func (l *List[T]) linkBetween(v T, prev, next link) {
	i := l.alloc(v, prev, next)

	if prev != none {
		l.at(prev).next = i
	} else {
		l.head = i
	}

	if next != none {
		l.at(next).prev = i
	} else {
		l.tail = i
	}
}

// unlink splices node i out of the chain, releases its slot and returns the
// element. head and tail are updated before release, so the list is
// consistent again by the time the element is handed back.
func (l *List[T]) unlink(i link) T {
	n := l.at(i)

	if n.prev != none {
		l.at(n.prev).next = n.next
	} else {
		l.head = n.next
	}

	if n.next != none {
		l.at(n.next).prev = n.prev
	} else {
		l.tail = n.prev
	}

	return l.release(i)
}

// drop is the single removal path for pops, RemoveIf, Clear and Close: unlink
// node i, release it and finalize its element exactly once.
func (l *List[T]) drop(i link) {
	v := l.unlink(i)

	if l.finalize != nil {
		l.finalize(v)
		return
	}
	if f, ok := any(v).(Finalizer); ok {
		f.Finalize()
	}
}
