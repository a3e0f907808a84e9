package list

import "github.com/pkg/errors"

// Validate walks the list in both directions and checks its structural
// invariants: head and tail agree on emptiness, the ends have no outer
// links, every node's prev points back at the node before it, the forward
// walk ends at tail after Len nodes, the backward walk visits the same nodes
// in reverse, and the arena's live and free slots add up. It returns the first
// violation found.
func (l *List[T]) Validate() error {
	if (l.head == none) != (l.tail == none) {
		return errors.Errorf("list: head %d and tail %d disagree on emptiness", l.head, l.tail)
	}
	if (l.head == none) != (l.len == 0) {
		return errors.Errorf("list: head %d with length %d", l.head, l.len)
	}
	if live := len(l.nodes) - len(l.free); live != l.len {
		return errors.Errorf("list: %d live slots, length %d", live, l.len)
	}
	for _, i := range l.free {
		if i <= none || int(i) > len(l.nodes) || l.nodes[i-1].used {
			return errors.Errorf("list: free slot %d is not a released slot", i)
		}
	}
	if l.head == none {
		return nil
	}

	if !l.live(l.head) || !l.live(l.tail) {
		return errors.Errorf("list: head %d or tail %d is not a live slot", l.head, l.tail)
	}
	if p := l.at(l.head).prev; p != none {
		return errors.Errorf("list: head %d has prev %d", l.head, p)
	}
	if n := l.at(l.tail).next; n != none {
		return errors.Errorf("list: tail %d has next %d", l.tail, n)
	}

	forward := make([]link, 0, l.len)
	for i, prev := l.head, none; i != none; prev, i = i, l.at(i).next {
		if !l.live(i) {
			return errors.Errorf("list: slot %d after %d is not live", i, prev)
		}
		if p := l.at(i).prev; p != prev {
			return errors.Errorf("list: slot %d has prev %d, want %d", i, p, prev)
		}
		if forward = append(forward, i); len(forward) > l.len {
			return errors.Errorf("list: forward walk longer than length %d", l.len)
		}
	}
	if len(forward) != l.len {
		return errors.Errorf("list: forward walk visited %d nodes, length %d", len(forward), l.len)
	}
	if last := forward[len(forward)-1]; last != l.tail {
		return errors.Errorf("list: forward walk ended at %d, tail is %d", last, l.tail)
	}

	k := len(forward) - 1
	for i := l.tail; i != none; i = l.at(i).prev {
		if k < 0 || forward[k] != i {
			return errors.Errorf("list: backward walk diverges at slot %d", i)
		}
		k--
	}
	if k != -1 {
		return errors.Errorf("list: backward walk stopped %d nodes short", k+1)
	}
	return nil
}
