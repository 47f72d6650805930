package state

import (
	"context"

	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/internal/store"
)

func teamEffects(deps Deps) []*store.Effect {
	return []*store.Effect{
		store.On("get_teams", store.Latest, func(ctx context.Context, _ GetTeams) store.Action {
			teams, err := deps.Teams.List(ctx)
			if err != nil {
				deps.failed(ctx, "get_teams", err)
				return nil
			}
			return GetTeamsOk{Teams: teams}
		}),

		store.On("create_team", store.Exhaust, func(ctx context.Context, a CreateTeam) store.Action {
			id, err := deps.Teams.Create(ctx, a.Team)
			if err != nil {
				deps.failed(ctx, "create_team", err)
				return nil
			}
			return CreateTeamOk{Team: models.Team{
				ID:             id,
				Name:           a.Team.Name,
				PrimaryColor:   a.Team.PrimaryColor,
				SecondaryColor: a.Team.SecondaryColor,
			}}
		}),

		store.On("update_team", store.Exhaust, func(ctx context.Context, a UpdateTeam) store.Action {
			ok, err := deps.Teams.Update(ctx, a.Team)
			if err != nil {
				deps.failed(ctx, "update_team", err)
				return nil
			}
			if !ok {
				deps.rejected(ctx, "update_team")
				return nil
			}
			return UpdateTeamOk{Team: a.Team}
		}),

		store.On("delete_team", store.Exhaust, func(ctx context.Context, a DeleteTeam) store.Action {
			ok, err := deps.Teams.Delete(ctx, a.ID)
			if err != nil {
				deps.failed(ctx, "delete_team", err)
				return nil
			}
			if !ok {
				deps.rejected(ctx, "delete_team")
				return nil
			}
			return DeleteTeamOk{ID: a.ID}
		}),
	}
}
