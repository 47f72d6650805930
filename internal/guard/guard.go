// Package guard decides route admission from the derived auth status.
package guard

import (
	"context"

	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/internal/state"
	"github.com/hilbertsen/teamcal/internal/store"
)

const LoginPath = "/login"

// Decision is the outcome of a gate. A zero Redirect admits.
type Decision struct {
	Redirect string
}

func (d Decision) Admitted() bool {
	return d.Redirect == ""
}

var Allow = Decision{}

func RedirectTo(path string) Decision {
	return Decision{Redirect: path}
}

type Options struct {
	// Disabled skips the auth check entirely.
	Disabled bool
}

type Gate struct {
	store    *state.Store
	decide   func(loggedIn bool) Decision
	disabled Decision
	off      bool
}

// Auth admits signed-in users and sends everyone else to the login page.
func Auth(s *state.Store, opts Options) *Gate {
	return &Gate{
		store: s,
		decide: func(loggedIn bool) Decision {
			if loggedIn {
				return Allow
			}
			return RedirectTo(LoginPath)
		},
		disabled: Allow,
		off:      opts.Disabled,
	}
}

// Anonymous admits visitors that are not signed in. It guards the login page.
func Anonymous(s *state.Store, opts Options) *Gate {
	return &Gate{
		store: s,
		decide: func(loggedIn bool) Decision {
			if loggedIn {
				return RedirectTo(state.RootPath)
			}
			return Allow
		},
		disabled: RedirectTo(state.RootPath),
		off:      opts.Disabled,
	}
}

// Decide blocks until the auth status is known and returns one decision.
func (g *Gate) Decide(ctx context.Context) (Decision, error) {
	if g.off {
		return g.disabled, nil
	}

	if d, ok := g.Admit(); ok {
		return d, nil
	}

	ch, stop := store.Watch(g.store, state.SelectLoggedIn, store.Comparable[models.AuthStatus])
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return Decision{}, ctx.Err()
		case status, ok := <-ch:
			if !ok {
				return Decision{}, context.Canceled
			}
			if loggedIn, known := status.Definite(); known {
				return g.decide(loggedIn), nil
			}
		}
	}
}

// Admit is the non-blocking form of Decide. decided is false while the auth
// status is unknown.
func (g *Gate) Admit() (d Decision, decided bool) {
	if g.off {
		return g.disabled, true
	}
	loggedIn, ok := state.SelectLoggedIn(g.store.State()).Definite()
	if !ok {
		return Decision{}, false
	}
	return g.decide(loggedIn), true
}
