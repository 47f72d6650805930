// Package commands implements the teamcalctl command line.
package commands

import (
	"github.com/spf13/cobra"
)

// GlobalOptions are flags shared by every command. Empty values keep the
// environment configuration.
type GlobalOptions struct {
	APIURL   string
	LogLevel string
	ViewFile string
	NoColor  bool
}

func New() *cobra.Command {
	o := &GlobalOptions{}

	cmd := &cobra.Command{
		Use:           "teamcalctl",
		Short:         "Manage the team calendar from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.APIURL, "api-url", "", "calendar API base URL (default $TEAMCAL_API_URL)")
	flags.StringVar(&o.LogLevel, "log-level", "", "debug, info, warn or error (default $TEAMCAL_LOG_LEVEL)")
	flags.StringVar(&o.ViewFile, "view-file", "", "YAML file with calendar view settings (default $TEAMCAL_VIEW_FILE)")
	flags.BoolVar(&o.NoColor, "no-color", false, "disable colored output")

	AddCommands(cmd, o)
	return cmd
}

func AddCommands(topLevel *cobra.Command, o *GlobalOptions) {
	addLogin(topLevel, o)
	addLogout(topLevel, o)
	addStatus(topLevel, o)
	addPasswd(topLevel, o)
	addEvents(topLevel, o)
	addEvent(topLevel, o)
	addTeams(topLevel, o)
	addEmployees(topLevel, o)
	addWatch(topLevel, o)
	addExport(topLevel, o)
}
