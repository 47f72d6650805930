package state

import "github.com/hilbertsen/teamcal/pkg/dto"

type AuthAction interface {
	Type() string
	authAction()
}

type (
	Login                struct{ Login dto.Login }
	LoginOk              struct{}
	LoginFailed          struct{}
	Logout               struct{}
	LogoutOk             struct{}
	CheckLoggedIn        struct{}
	LoggedInOk           struct{ LoggedIn bool }
	ChangePassword       struct{ ChangePassword dto.ChangePassword }
	ChangePasswordOk     struct{}
	ChangePasswordFailed struct{}
)

func (Login) Type() string                { return "[Auth] Login" }
func (LoginOk) Type() string              { return "[Auth] Login Ok" }
func (LoginFailed) Type() string          { return "[Auth] Login Failed" }
func (Logout) Type() string               { return "[Auth] Logout" }
func (LogoutOk) Type() string             { return "[Auth] Logout Ok" }
func (CheckLoggedIn) Type() string        { return "[Auth] Logged in" }
func (LoggedInOk) Type() string           { return "[Auth] Logged in Ok" }
func (ChangePassword) Type() string       { return "[Auth] Change password" }
func (ChangePasswordOk) Type() string     { return "[Auth] Change password Ok" }
func (ChangePasswordFailed) Type() string { return "[Auth] Change password Failed" }

func (Login) authAction()                {}
func (LoginOk) authAction()              {}
func (LoginFailed) authAction()          {}
func (Logout) authAction()               {}
func (LogoutOk) authAction()             {}
func (CheckLoggedIn) authAction()        {}
func (LoggedInOk) authAction()           {}
func (ChangePassword) authAction()       {}
func (ChangePasswordOk) authAction()     {}
func (ChangePasswordFailed) authAction() {}
