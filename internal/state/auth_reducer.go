package state

import (
	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/internal/store"
)

type AuthState struct {
	LoggedIn models.AuthStatus
}

func ReduceAuth(s AuthState, action store.Action) AuthState {
	switch a := action.(type) {
	case LoginOk:
		s.LoggedIn = models.AuthTrue
	case LoggedInOk:
		s.LoggedIn = models.AuthStatusOf(a.LoggedIn)
	}
	return s
}
