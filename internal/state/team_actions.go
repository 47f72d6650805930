package state

import (
	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/pkg/dto"
)

type TeamAction interface {
	Type() string
	teamAction()
}

type (
	GetTeams     struct{}
	GetTeamsOk   struct{ Teams []models.Team }
	CreateTeam   struct{ Team dto.CreateTeam }
	CreateTeamOk struct{ Team models.Team }
	UpdateTeam   struct{ Team models.Team }
	UpdateTeamOk struct{ Team models.Team }
	DeleteTeam   struct{ ID int64 }
	DeleteTeamOk struct{ ID int64 }
)

func (GetTeams) Type() string     { return "[Team] Get teams" }
func (GetTeamsOk) Type() string   { return "[Team] Get teams Ok" }
func (CreateTeam) Type() string   { return "[Team] Create team" }
func (CreateTeamOk) Type() string { return "[Team] Create team Ok" }
func (UpdateTeam) Type() string   { return "[Team] Update team" }
func (UpdateTeamOk) Type() string { return "[Team] Update team Ok" }
func (DeleteTeam) Type() string   { return "[Team] Delete team" }
func (DeleteTeamOk) Type() string { return "[Team] Delete team Ok" }

func (GetTeams) teamAction()     {}
func (GetTeamsOk) teamAction()   {}
func (CreateTeam) teamAction()   {}
func (CreateTeamOk) teamAction() {}
func (UpdateTeam) teamAction()   {}
func (UpdateTeamOk) teamAction() {}
func (DeleteTeam) teamAction()   {}
func (DeleteTeamOk) teamAction() {}
