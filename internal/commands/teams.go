package commands

import (
	"fmt"
	"slices"

	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/internal/state"
	"github.com/hilbertsen/teamcal/pkg/dto"
	"github.com/spf13/cobra"
)

func addTeams(topLevel *cobra.Command, o *GlobalOptions) {
	cmd := &cobra.Command{
		Use:     "teams",
		Aliases: []string{"team"},
		Short:   "List teams.",
		Args:    cobra.NoArgs,
		RunE: withApp(o, func(cmd *cobra.Command, a *app, _ []string) error {
			s := a.do(state.GetTeams{})
			printTeams(a.out, state.SelectTeams(s))
			return nil
		}),
	}

	addTeamCreate(cmd, o)
	addTeamUpdate(cmd, o)
	addTeamDelete(cmd, o)

	topLevel.AddCommand(cmd)
}

func addTeamCreate(parent *cobra.Command, o *GlobalOptions) {
	req := dto.CreateTeam{}

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a team.",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(o, func(cmd *cobra.Command, a *app, args []string) error {
			req.Name = args[0]
			if req.PrimaryColor == "" {
				req.PrimaryColor = models.DefaultTeamPrimaryColor
			}
			if req.SecondaryColor == "" {
				req.SecondaryColor = models.DefaultTeamSecondaryColor
			}
			if err := models.ValidateCreateTeam(req); err != nil {
				return err
			}
			if err := a.requireLogin(); err != nil {
				return err
			}

			before := teamIDs(a.do(state.GetTeams{}))
			s := a.do(state.CreateTeam{Team: req})
			for _, id := range teamIDs(s) {
				if !slices.Contains(before, id) {
					_, _ = success.Fprintf(a.out, "created team %d\n", id)
					return nil
				}
			}
			return fmt.Errorf("team was not created")
		}),
	}
	cmd.Flags().StringVar(&req.PrimaryColor, "primary", "", "primary color, #rrggbb")
	cmd.Flags().StringVar(&req.SecondaryColor, "secondary", "", "secondary color, #rrggbb")

	parent.AddCommand(cmd)
}

func addTeamUpdate(parent *cobra.Command, o *GlobalOptions) {
	var (
		name, primary, secondary string
		disabled                 bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename, recolor or disable a team.",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(o, func(cmd *cobra.Command, a *app, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.requireLogin(); err != nil {
				return err
			}

			team, ok := state.SelectTeamsMap(a.do(state.GetTeams{}))[id]
			if !ok {
				return fmt.Errorf("team %d not found", id)
			}
			flags := cmd.Flags()
			if flags.Changed("name") {
				team.Name = name
			}
			if flags.Changed("primary") {
				team.PrimaryColor = primary
			}
			if flags.Changed("secondary") {
				team.SecondaryColor = secondary
			}
			if flags.Changed("disabled") {
				team.Disabled = disabled
			}
			if err := models.ValidateTeam(team); err != nil {
				return err
			}

			updated := state.SelectTeamsMap(a.do(state.UpdateTeam{Team: team}))[id]
			if updated != team {
				return fmt.Errorf("team %d was not updated", id)
			}
			_, _ = success.Fprintf(a.out, "updated team %d\n", id)
			return nil
		}),
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&primary, "primary", "", "primary color, #rrggbb")
	cmd.Flags().StringVar(&secondary, "secondary", "", "secondary color, #rrggbb")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "hide the team from new events")

	parent.AddCommand(cmd)
}

func addTeamDelete(parent *cobra.Command, o *GlobalOptions) {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a team.",
		Args:    cobra.ExactArgs(1),
		RunE: withApp(o, func(cmd *cobra.Command, a *app, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.requireLogin(); err != nil {
				return err
			}

			if !slices.Contains(teamIDs(a.do(state.GetTeams{})), id) {
				return fmt.Errorf("team %d not found", id)
			}
			if slices.Contains(teamIDs(a.do(state.DeleteTeam{ID: id})), id) {
				return fmt.Errorf("team %d was not deleted", id)
			}
			_, _ = success.Fprintf(a.out, "deleted team %d\n", id)
			return nil
		}),
	}

	parent.AddCommand(cmd)
}

func teamIDs(s state.AppState) []int64 {
	ids := make([]int64, 0, len(s.Teams.Teams))
	for _, t := range s.Teams.Teams {
		ids = append(ids, t.ID)
	}
	return ids
}
