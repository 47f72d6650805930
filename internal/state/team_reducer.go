package state

import (
	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/internal/store"
)

type TeamState struct {
	Teams []models.Team
}

func teamID(t models.Team) int64 { return t.ID }

func ReduceTeams(s TeamState, action store.Action) TeamState {
	a, ok := action.(TeamAction)
	if !ok {
		return s
	}

	switch a := a.(type) {
	case GetTeamsOk:
		s.Teams = a.Teams
	case CreateTeamOk:
		s.Teams = appendItem(s.Teams, a.Team)
	case UpdateTeamOk:
		s.Teams = replaceByID(s.Teams, a.Team, teamID)
	case DeleteTeamOk:
		s.Teams = removeByID(s.Teams, a.ID, teamID)
	}
	return s
}
