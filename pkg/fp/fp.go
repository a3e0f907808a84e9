package fp

import "iter"

// FMap is the eager form of Map for slices.
func FMap[T any, U any](vs []T, f func(T) U) (us []U) {
	us = make([]U, len(vs))

	for i, v := range vs {
		us[i] = f(v)
	}

	return
}

// Map lazily applies f to every value of seq.
func Map[T any, U any](seq iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Take stops seq after n values.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			if i++; i == n {
				return
			}
		}
	}
}
