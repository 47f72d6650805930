package store

import "sync"

// SameSlice reports whether a and b share the same backing array and length.
// Reducers that leave a slice untouched keep it identical, so selectors can
// skip recomputation.
func SameSlice[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return (a == nil) == (b == nil)
	}
	return &a[0] == &b[0]
}

// Memo caches the result of fn for the most recent input.
func Memo[A, R any](same func(a, b A) bool, fn func(A) R) func(A) R {
	var (
		mu     sync.Mutex
		cached bool
		lastA  A
		lastR  R
	)
	return func(a A) R {
		mu.Lock()
		defer mu.Unlock()
		if cached && same(lastA, a) {
			return lastR
		}
		lastA, lastR, cached = a, fn(a), true
		return lastR
	}
}

// Memo2 is Memo for two inputs.
func Memo2[A, B, R any](sameA func(a, b A) bool, sameB func(a, b B) bool, fn func(A, B) R) func(A, B) R {
	var (
		mu     sync.Mutex
		cached bool
		lastA  A
		lastB  B
		lastR  R
	)
	return func(a A, b B) R {
		mu.Lock()
		defer mu.Unlock()
		if cached && sameA(lastA, a) && sameB(lastB, b) {
			return lastR
		}
		lastA, lastB, lastR, cached = a, b, fn(a, b), true
		return lastR
	}
}

// Comparable compares values with ==.
func Comparable[T comparable](a, b T) bool {
	return a == b
}
