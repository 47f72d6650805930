package api

import (
	"context"
	"strconv"

	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/pkg/dto"
)

type TeamService struct {
	client *Client
}

func NewTeamService(client *Client) *TeamService {
	return &TeamService{client: client}
}

func (s *TeamService) List(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	if err := s.client.Get(ctx, "teams", nil, &teams); err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []models.Team{}
	}
	return teams, nil
}

func (s *TeamService) Create(ctx context.Context, team dto.CreateTeam) (int64, error) {
	var id int64
	if err := s.client.Post(ctx, "teams", team, &id); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *TeamService) Update(ctx context.Context, team models.Team) (bool, error) {
	var ok bool
	if err := s.client.Put(ctx, "teams", team, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (s *TeamService) Delete(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := s.client.Delete(ctx, "teams/"+strconv.FormatInt(id, 10), &ok); err != nil {
		return false, err
	}
	return ok, nil
}
