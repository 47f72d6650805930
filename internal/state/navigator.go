package state

// Navigator performs hard navigation. Login and logout use it to reload the
// application, which re-bootstraps per-session state.
type Navigator interface {
	Assign(path string)
}

type NavigatorFunc func(path string)

func (f NavigatorFunc) Assign(path string) {
	f(path)
}

const RootPath = "/"
