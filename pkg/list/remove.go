package list

import "github.com/pkg/errors"

// RemoveIf removes and finalizes every element for which pred returns true,
// keeping the survivors in order, and reports how many were removed.
//
// pred sees each element exactly once, before that element's node is touched.
// If pred panics, elements already removed stay removed and the element under
// evaluation plus everything after it stay in the list. pred must not mutate
// the list; doing so panics with ErrConcurrentMutation.
func (l *List[T]) RemoveIf(pred func(T) bool) int {
	n, _ := l.removeWhere(func(v T) (bool, error) { return pred(v), nil })
	return n
}

// TryRemoveIf is RemoveIf with a fallible predicate. It stops at the first
// error, leaving that element and the rest of the list in place, and returns
// the number removed so far with the error wrapped. errors.Cause recovers the
// predicate's error.
func (l *List[T]) TryRemoveIf(pred func(T) (bool, error)) (int, error) {
	n, err := l.removeWhere(pred)
	if err != nil {
		return n, errors.Wrapf(err, "list: predicate failed after %d removal(s)", n)
	}
	return n, nil
}

func (l *List[T]) removeWhere(pred func(T) (bool, error)) (int, error) {
	removed := 0
	for i := l.head; i != none; {
		n := l.at(i)
		next, epoch := n.next, l.epoch

		match, err := pred(n.elem)
		if l.epoch != epoch {
			panic(ErrConcurrentMutation)
		}
		if err != nil {
			return removed, err
		}

		if match {
			l.drop(i)
			// drop bumps the epoch once; anything more came from the finalizer
			if l.epoch != epoch+1 {
				panic(ErrConcurrentMutation)
			}
			removed++
		}
		i = next
	}
	return removed, nil
}
