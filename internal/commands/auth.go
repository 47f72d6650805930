package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hilbertsen/teamcal/internal/guard"
	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/internal/state"
	"github.com/hilbertsen/teamcal/pkg/dto"
	"github.com/spf13/cobra"
)

var errWrongPassword = errors.New("wrong password")

// readSecret returns value, or the first line of in when value is empty.
func readSecret(in io.Reader, out io.Writer, prompt, value string) (string, error) {
	if value != "" {
		return value, nil
	}
	_, _ = fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func addLogin(topLevel *cobra.Command, o *GlobalOptions) {
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the session for later commands.",
		Example: `
teamcalctl login
echo "$PASSWORD" | teamcalctl login
`,
		Args: cobra.NoArgs,
		RunE: withApp(o, func(cmd *cobra.Command, a *app, _ []string) error {
			decision, err := a.admit(guard.Anonymous(a.store, guard.Options{Disabled: !a.cfg.Auth}))
			if err != nil {
				return err
			}
			if !decision.Admitted() {
				_, _ = fmt.Fprintln(a.out, "already logged in")
				return nil
			}

			pw, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "password: ", password)
			if err != nil {
				return err
			}
			login := dto.Login{Password: pw}
			if err := models.ValidateLogin(login); err != nil {
				return err
			}

			s := a.do(state.Login{Login: login})
			loggedIn, ok := s.Auth.LoggedIn.Definite()
			switch {
			case !ok:
				return fmt.Errorf("could not reach %s", a.cfg.APIURL)
			case !loggedIn:
				return errWrongPassword
			}
			_, _ = success.Fprintln(a.out, "logged in")
			return nil
		}),
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password, read from stdin when empty")

	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command, o *GlobalOptions) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "End the current session.",
		Args:  cobra.NoArgs,
		RunE: withApp(o, func(cmd *cobra.Command, a *app, _ []string) error {
			s := a.do(state.Logout{})
			if loggedIn, _ := s.Auth.LoggedIn.Definite(); loggedIn && a.cfg.Auth {
				return fmt.Errorf("logout failed")
			}
			_, _ = fmt.Fprintln(a.out, "logged out")
			return nil
		}),
	}

	topLevel.AddCommand(cmd)
}

func addStatus(topLevel *cobra.Command, o *GlobalOptions) {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether the saved session is still valid.",
		Args:  cobra.NoArgs,
		RunE: withApp(o, func(cmd *cobra.Command, a *app, _ []string) error {
			decision, err := a.admit(guard.Auth(a.store, guard.Options{Disabled: !a.cfg.Auth}))
			if err != nil {
				return err
			}

			_, _ = bold.Fprint(a.out, a.cfg.APIURL+" ")
			if decision.Admitted() {
				_, _ = success.Fprintln(a.out, "logged in")
			} else {
				_, _ = failure.Fprintln(a.out, "not logged in")
			}
			return nil
		}),
	}

	topLevel.AddCommand(cmd)
}

func addPasswd(topLevel *cobra.Command, o *GlobalOptions) {
	var req dto.ChangePassword

	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the calendar password.",
		Args:  cobra.NoArgs,
		RunE: withApp(o, func(cmd *cobra.Command, a *app, _ []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			var err error
			in := bufio.NewReader(cmd.InOrStdin())
			if req.OldPassword, err = readSecret(in, cmd.ErrOrStderr(), "current password: ", req.OldPassword); err != nil {
				return err
			}
			if req.NewPassword, err = readSecret(in, cmd.ErrOrStderr(), "new password: ", req.NewPassword); err != nil {
				return err
			}
			if err := models.ValidateChangePassword(req); err != nil {
				return err
			}

			before := len(a.center.Active())
			a.do(state.ChangePassword{ChangePassword: req})
			if len(a.center.Active()) == before {
				return fmt.Errorf("password was not changed")
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&req.OldPassword, "old", "", "current password")
	cmd.Flags().StringVar(&req.NewPassword, "new", "", "new password")

	topLevel.AddCommand(cmd)
}
