package services

import (
	"fmt"
	"time"

	"github.com/taskturkey/taskturkey-api/internal/models"
	"github.com/taskturkey/taskturkey-api/internal/repository"
	"github.com/taskturkey/taskturkey-api/internal/utils"
)

// TeamService handles team business logic.
type TeamService struct {
	teamRepo repository.TeamRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo repository.TeamRepository) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
	}
}

// ListTeams returns the teams the user is a member of.
func (s *TeamService) ListTeams(userID string) ([]models.Team, error) {
	teams, err := s.teamRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// CreateTeamInput represents input for creating a team.
type CreateTeamInput struct {
	Name        string
	Description string
	CreatorID   string
}

// CreateTeam creates a team with the creator as its first admin member.
func (s *TeamService) CreateTeam(input CreateTeamInput) (*models.Team, error) {
	team := &models.Team{
		ID:          utils.NewID(),
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   input.CreatorID,
	}

	member := &models.TeamMember{
		UserID:   input.CreatorID,
		Role:     models.TeamRoleAdmin,
		JoinedAt: time.Now(),
	}

	if err := s.teamRepo.CreateWithCreator(team, member); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	team.Members = []models.TeamMember{*member}
	return team, nil
}
