package models

// AuthStatus is the session state as last reported by the server.
type AuthStatus int8

const (
	AuthUnknown AuthStatus = iota
	AuthFalse
	AuthTrue
)

func AuthStatusOf(loggedIn bool) AuthStatus {
	if loggedIn {
		return AuthTrue
	}
	return AuthFalse
}

// Definite reports the boolean value and whether the status is known at all.
func (s AuthStatus) Definite() (loggedIn bool, ok bool) {
	switch s {
	case AuthTrue:
		return true, true
	case AuthFalse:
		return false, true
	default:
		return false, false
	}
}

func (s AuthStatus) String() string {
	switch s {
	case AuthTrue:
		return "true"
	case AuthFalse:
		return "false"
	default:
		return "unknown"
	}
}
