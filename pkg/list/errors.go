package list

import "github.com/pkg/errors"

var (
	// ErrStaleCursor reports a cursor used after a structural mutation of its
	// list.
	ErrStaleCursor = errors.New("list: cursor used after structural mutation")

	// ErrConcurrentMutation reports a RemoveIf predicate, or a finalizer run
	// by RemoveIf or Clear, that mutated the list being swept.
	ErrConcurrentMutation = errors.New("list: list mutated while removing elements")
)
