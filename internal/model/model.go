package model

import (
	"context"
	"slices"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/rapidmidiex/linkedlist/pkg/list"
)

type Op int

const (
	PushFront Op = iota
	PushBack
	PopFront
	PopBack
	TakeFront
	TakeBack
	RemoveIf
	Clear
	Double

	numOps
)

func (o Op) String() string {
	switch o {
	case PushFront:
		return "PUSH_FRONT"
	case PushBack:
		return "PUSH_BACK"
	case PopFront:
		return "POP_FRONT"
	case PopBack:
		return "POP_BACK"
	case TakeFront:
		return "TAKE_FRONT"
	case TakeBack:
		return "TAKE_BACK"
	case RemoveIf:
		return "REMOVE_IF"
	case Clear:
		return "CLEAR"
	case Double:
		return "DOUBLE"

	default:
		return "UNKNOWN"
	}
}

var ErrMismatch = errors.New("model: list diverged from reference")

// Result summarizes one checked run.
type Result struct {
	Seed      int64
	Steps     int
	Pushed    int
	Finalized int
	Taken     int
	Ops       map[Op]int
}

// Check applies steps random operations, drawn from seed, to a list and to a
// slice holding the same elements, and fails on the first step after which
// the two disagree or the list breaks one of its invariants. The list is
// closed at the end so every element pushed must have been finalized or
// taken.
func Check(seed int64, steps int) (*Result, error) {
	f := gofakeit.New(seed)
	res := &Result{Seed: seed, Steps: steps, Ops: make(map[Op]int)}

	l := list.New(list.WithFinalizer(func(int) { res.Finalized++ }))
	var ref []int

	for step := 0; step < steps; step++ {
		op := Op(f.IntRange(0, int(numOps)-1))
		res.Ops[op]++

		switch op {
		case PushFront:
			v := f.IntRange(-100, 100)
			l.PushFront(v)
			ref = slices.Insert(ref, 0, v)
			res.Pushed++
		case PushBack:
			v := f.IntRange(-100, 100)
			l.PushBack(v)
			ref = append(ref, v)
			res.Pushed++
		case PopFront:
			l.PopFront()
			if len(ref) > 0 {
				ref = ref[1:]
			}
		case PopBack:
			l.PopBack()
			if len(ref) > 0 {
				ref = ref[:len(ref)-1]
			}
		case TakeFront:
			v, ok := l.TakeFront()
			if ok != (len(ref) > 0) || ok && v != ref[0] {
				return res, errors.Wrapf(ErrMismatch, "seed %d step %d: %s got (%d, %t)", seed, step, op, v, ok)
			}
			if ok {
				ref = ref[1:]
				res.Taken++
			}
		case TakeBack:
			v, ok := l.TakeBack()
			if ok != (len(ref) > 0) || ok && v != ref[len(ref)-1] {
				return res, errors.Wrapf(ErrMismatch, "seed %d step %d: %s got (%d, %t)", seed, step, op, v, ok)
			}
			if ok {
				ref = ref[:len(ref)-1]
				res.Taken++
			}
		case RemoveIf:
			d := f.IntRange(2, 5)
			match := func(v int) bool { return v%d == 0 }
			n := l.RemoveIf(match)
			before := len(ref)
			ref = slices.DeleteFunc(ref, match)
			if n != before-len(ref) {
				return res, errors.Wrapf(ErrMismatch, "seed %d step %d: %s removed %d, want %d", seed, step, op, n, before-len(ref))
			}
		case Clear:
			// rare, or lists never grow past a handful of elements
			if f.IntRange(0, 9) > 0 {
				continue
			}
			l.Clear()
			ref = ref[:0]
		case Double:
			for p := range l.AllMut() {
				*p *= 2
			}
			for i := range ref {
				ref[i] *= 2
			}
		}

		if err := compare(l, ref); err != nil {
			return res, errors.Wrapf(err, "seed %d step %d after %s", seed, step, op)
		}
	}

	l.Close()
	if res.Finalized+res.Taken != res.Pushed {
		return res, errors.Wrapf(ErrMismatch, "seed %d: %d pushed, %d finalized, %d taken", seed, res.Pushed, res.Finalized, res.Taken)
	}
	return res, nil
}

func compare(l *list.List[int], ref []int) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if l.Len() != len(ref) {
		return errors.Wrapf(ErrMismatch, "length %d, want %d", l.Len(), len(ref))
	}
	if l.IsEmpty() != (len(ref) == 0) {
		return errors.Wrapf(ErrMismatch, "IsEmpty %t with %d elements", l.IsEmpty(), len(ref))
	}

	fwd := slices.Collect(l.All())
	if !slices.Equal(fwd, ref) {
		return errors.Wrapf(ErrMismatch, "forward %v, want %v", fwd, ref)
	}

	bwd := slices.Collect(l.Backward())
	slices.Reverse(bwd)
	if !slices.Equal(bwd, ref) {
		return errors.Wrapf(ErrMismatch, "backward walk disagrees with forward walk %v", fwd)
	}

	if len(ref) > 0 {
		front, _ := l.Front()
		back, _ := l.Back()
		if front != ref[0] || back != ref[len(ref)-1] {
			return errors.Wrapf(ErrMismatch, "ends (%d, %d), want (%d, %d)", front, back, ref[0], ref[len(ref)-1])
		}
	}
	return nil
}

// CheckAll runs Check for every seed with at most workers running at once.
// Each run owns its own list; nothing is shared between goroutines. It
// returns on the first failure or when ctx is done.
func CheckAll(ctx context.Context, seeds []int64, steps, workers int) ([]*Result, error) {
	results := make([]*Result, len(seeds))
	if workers < 1 {
		workers = 1
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, seed := range seeds {
		if gCtx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			res, err := Check(seed, steps)
			results[i] = res
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

// Seeds returns n consecutive seeds starting at first.
func Seeds(first int64, n int) []int64 {
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = first + int64(i)
	}
	return seeds
}
