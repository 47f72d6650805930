package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hilbertsen/teamcal/internal/logging"
)

// Policy decides what happens when an intent arrives while an earlier task
// of the same effect is still running.
type Policy int

const (
	// Latest cancels the running task and discards its outcome.
	Latest Policy = iota
	// Exhaust ignores new intents until the running task has finished.
	Exhaust
	// Once handles the first matching action only.
	Once
)

func (p Policy) String() string {
	switch p {
	case Latest:
		return "latest"
	case Exhaust:
		return "exhaust"
	case Once:
		return "once"
	default:
		return "unknown"
	}
}

// Task performs the I/O for one action and returns the outcome to dispatch,
// or nil when there is nothing to report.
type Task func(ctx context.Context, action Action) Action

type runner interface {
	Dispatch(action Action)
	dispatchIf(action Action, admit func() bool)
	spawn(fn func(ctx context.Context)) context.CancelFunc
	baseLogger() *slog.Logger
}

type Effect struct {
	name   string
	policy Policy
	match  func(Action) bool
	task   Task

	mu     sync.Mutex
	busy   bool
	done   bool
	token  uint64
	cancel context.CancelFunc
}

func NewEffect(name string, policy Policy, match func(Action) bool, task Task) *Effect {
	return &Effect{name: name, policy: policy, match: match, task: task}
}

// On builds an effect that handles actions of type A.
func On[A Action](name string, policy Policy, fn func(ctx context.Context, action A) Action) *Effect {
	return NewEffect(name, policy, Is[A], func(ctx context.Context, action Action) Action {
		return fn(ctx, action.(A))
	})
}

// Is reports whether action has the concrete type A.
func Is[A Action](action Action) bool {
	_, ok := action.(A)
	return ok
}

func (e *Effect) Name() string {
	return e.name
}

func (e *Effect) start(r runner, action Action) {
	logger := logging.Component(context.Background(), r.baseLogger(), "effects", e.name, "policy", e.policy.String())

	switch e.policy {
	case Latest:
		e.mu.Lock()
		if e.cancel != nil {
			e.cancel()
		}
		e.token++
		token := e.token
		e.cancel = r.spawn(func(ctx context.Context) {
			out := e.task(ctx, action)
			if out == nil {
				return
			}
			r.dispatchIf(out, func() bool {
				if e.current(token) {
					return true
				}
				logger.Debug("discarding superseded outcome", "action", out.Type())
				return false
			})
		})
		e.mu.Unlock()

	case Exhaust:
		e.mu.Lock()
		if e.busy {
			e.mu.Unlock()
			logger.Debug("ignoring intent while busy", "action", action.Type())
			return
		}
		e.busy = true
		e.mu.Unlock()

		r.spawn(func(ctx context.Context) {
			defer func() {
				e.mu.Lock()
				e.busy = false
				e.mu.Unlock()
			}()
			if out := e.task(ctx, action); out != nil {
				r.Dispatch(out)
			}
		})

	case Once:
		e.mu.Lock()
		if e.done {
			e.mu.Unlock()
			return
		}
		e.done = true
		e.mu.Unlock()

		r.spawn(func(ctx context.Context) {
			if out := e.task(ctx, action); out != nil {
				r.Dispatch(out)
			}
		})
	}
}

func (e *Effect) current(token uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.token == token
}
