package store

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

// Action is a typed intent or outcome. Type returns the "[Slice] Verb" tag.
type Action interface {
	Type() string
}

type Reducer[S any] func(state S, action Action) S

type observer[S any] func(state S, version uint64)

type queued struct {
	action Action
	// admit is checked when the action is dequeued; false drops it.
	admit func() bool
}

// Store owns the root state. All transitions go through Dispatch.
type Store[S any] struct {
	mu       sync.Mutex
	state    S
	version  uint64
	reducer  Reducer[S]
	queue    []queued
	draining bool

	observers map[uint64]observer[S]
	nextID    uint64

	effects []*Effect
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	logger  *slog.Logger
}

type Option func(*options)

type options struct {
	ctx    context.Context
	logger *slog.Logger
}

// WithContext sets the parent context of every effect task.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func New[S any](initial S, reducer Reducer[S], opts ...Option) *Store[S] {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	ctx, cancel := context.WithCancel(o.ctx)

	return &Store[S]{
		state:     initial,
		reducer:   reducer,
		observers: make(map[uint64]observer[S]),
		ctx:       ctx,
		cancel:    cancel,
		logger:    o.logger,
	}
}

// State returns the current root state.
func (s *Store[S]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies action to the state, notifies observers and starts
// matching effects before it returns. Actions dispatched while another
// dispatch is draining the queue, from an observer or from another goroutine,
// are applied by that drain in arrival order. Such a call returns at once, so
// a caller on another goroutine may see the action applied only after
// Dispatch has returned.
func (s *Store[S]) Dispatch(action Action) {
	s.enqueue(queued{action: action})
}

func (s *Store[S]) dispatchIf(action Action, admit func() bool) {
	s.enqueue(queued{action: action, admit: admit})
}

func (s *Store[S]) enqueue(q queued) {
	if q.action == nil {
		return
	}

	s.mu.Lock()
	s.queue = append(s.queue, q)
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true

	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue[0] = queued{}
		s.queue = s.queue[1:]

		if next.admit != nil && !next.admit() {
			continue
		}

		s.state = s.reducer(s.state, next.action)
		s.version++
		state, version := s.state, s.version
		observers := s.snapshotObservers()
		effects := s.effects
		s.mu.Unlock()

		for _, fn := range observers {
			fn(state, version)
		}
		for _, e := range effects {
			if e.match(next.action) {
				e.start(s, next.action)
			}
		}

		s.mu.Lock()
	}

	s.queue = nil
	s.draining = false
	s.mu.Unlock()
}

func (s *Store[S]) snapshotObservers() []observer[S] {
	ids := make([]uint64, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]observer[S], len(ids))
	for i, id := range ids {
		out[i] = s.observers[id]
	}
	return out
}

// Subscribe registers fn to be called with every new root state. It returns
// a function that removes the subscription.
func (s *Store[S]) Subscribe(fn func(S)) func() {
	return s.subscribe(func(state S, _ uint64) { fn(state) })
}

func (s *Store[S]) subscribe(fn observer[S]) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.observers, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store[S]) current() (S, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.version
}

// Register adds effects. Effects see every action dispatched after registration.
func (s *Store[S]) Register(effects ...*Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.effects = append(s.effects, effects...)
}

func (s *Store[S]) spawn(fn func(ctx context.Context)) context.CancelFunc {
	ctx, cancel := context.WithCancel(s.ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		fn(ctx)
	}()
	return cancel
}

// Wait blocks until every running effect task has finished.
func (s *Store[S]) Wait() {
	s.wg.Wait()
}

// Close cancels the context of running effect tasks and waits for them.
func (s *Store[S]) Close() {
	s.cancel()
	s.wg.Wait()
}

func (s *Store[S]) baseLogger() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}
