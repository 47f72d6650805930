package state

import (
	"context"

	"github.com/hilbertsen/teamcal/internal/store"
)

const PasswordChangedMessage = "Password changed"

func authEffects(deps Deps) []*store.Effect {
	return []*store.Effect{
		store.On("login", store.Exhaust, func(ctx context.Context, a Login) store.Action {
			ok, err := deps.Auth.Login(ctx, a.Login)
			if err != nil {
				deps.failed(ctx, "login", err)
				return nil
			}
			if !ok {
				return LoginFailed{}
			}
			deps.Navigator.Assign(RootPath)
			return LoginOk{}
		}),

		store.On("logout", store.Exhaust, func(ctx context.Context, _ Logout) store.Action {
			if err := deps.Auth.Logout(ctx); err != nil {
				deps.failed(ctx, "logout", err)
				return nil
			}
			return LogoutOk{}
		}),

		store.On("logout_ok", store.Once, func(ctx context.Context, _ LogoutOk) store.Action {
			deps.Navigator.Assign(RootPath)
			return nil
		}),

		store.On("logged_in", store.Latest, func(ctx context.Context, _ CheckLoggedIn) store.Action {
			loggedIn, err := deps.Auth.LoggedIn(ctx)
			if err != nil {
				deps.failed(ctx, "logged_in", err)
				return nil
			}
			return LoggedInOk{LoggedIn: loggedIn}
		}),

		store.On("change_password", store.Exhaust, func(ctx context.Context, a ChangePassword) store.Action {
			ok, err := deps.Auth.ChangePassword(ctx, a.ChangePassword)
			if err != nil {
				deps.failed(ctx, "change_password", err)
				return nil
			}
			if !ok {
				return ChangePasswordFailed{}
			}
			deps.Notifier.Success(PasswordChangedMessage)
			return ChangePasswordOk{}
		}),
	}
}
