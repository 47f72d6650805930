package store

import (
	"reflect"
	"sync"
)

// Equal is the default comparison used by Select.
func Equal[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

// Select calls fn with project(state) now and again whenever the projected
// value changes according to equal. A nil equal means Equal.
func Select[S, T any](s *Store[S], project func(S) T, equal func(a, b T) bool, fn func(T)) func() {
	if equal == nil {
		equal = Equal[T]
	}

	var (
		mu         sync.Mutex
		primed     bool
		seen       uint64
		last       T
		stopped    bool
		delivering bool
		pending    []T
	)
	// Deliveries run outside mu so fn may dispatch. A single deliverer drains
	// pending values, which keeps them in version order.
	emit := func(state S, version uint64) {
		mu.Lock()
		if stopped || (primed && version <= seen) {
			mu.Unlock()
			return
		}
		seen = version
		v := project(state)
		if primed && equal(last, v) {
			mu.Unlock()
			return
		}
		primed = true
		last = v
		pending = append(pending, v)
		if delivering {
			mu.Unlock()
			return
		}

		delivering = true
		for len(pending) > 0 && !stopped {
			next := pending[0]
			pending = pending[1:]
			mu.Unlock()
			fn(next)
			mu.Lock()
		}
		pending = nil
		delivering = false
		mu.Unlock()
	}

	unsubscribe := s.subscribe(emit)
	emit(s.current())

	return func() {
		unsubscribe()
		mu.Lock()
		stopped = true
		mu.Unlock()
	}
}

// Watch exposes a selection as a channel holding the most recent value.
// Values a slow reader has not received yet are replaced by newer ones. The
// channel is closed by the returned cancel function.
func Watch[S, T any](s *Store[S], project func(S) T, equal func(a, b T) bool) (<-chan T, func()) {
	ch := make(chan T, 1)

	var (
		mu     sync.Mutex
		closed bool
	)
	stop := Select(s, project, equal, func(v T) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case ch <- v:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- v
		}
	})

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			stop()
			mu.Lock()
			closed = true
			close(ch)
			mu.Unlock()
		})
	}
}
