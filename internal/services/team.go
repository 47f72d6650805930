package services

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/pkg/dto"
)

type TeamService struct {
	mu     sync.RWMutex
	nextID int64
	teams  map[int64]models.Team
}

func NewTeamService() *TeamService {
	return &TeamService{teams: make(map[int64]models.Team)}
}

func (s *TeamService) List(ctx context.Context) ([]models.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teams := make([]models.Team, 0, len(s.teams))
	for _, t := range s.teams {
		teams = append(teams, t)
	}
	slices.SortFunc(teams, func(a, b models.Team) int { return cmp.Compare(a.ID, b.ID) })
	return teams, nil
}

func (s *TeamService) Create(ctx context.Context, req dto.CreateTeam) (int64, error) {
	if err := models.ValidateCreateTeam(req); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.teams[s.nextID] = models.Team{
		ID:             s.nextID,
		Name:           req.Name,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
	}
	return s.nextID, nil
}

// Update replaces a team. It reports false when the team does not exist.
func (s *TeamService) Update(ctx context.Context, team models.Team) (bool, error) {
	if err := models.ValidateTeam(team); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[team.ID]; !ok {
		return false, nil
	}
	s.teams[team.ID] = team
	return true, nil
}

func (s *TeamService) Delete(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[id]; !ok {
		return false, nil
	}
	delete(s.teams, id)
	return true, nil
}

func (s *TeamService) GetByID(ctx context.Context, id int64) (models.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[id]
	return t, ok
}
