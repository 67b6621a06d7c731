package services

import (
	"errors"
	"fmt"

	"github.com/taskturkey/taskturkey-api/internal/models"
	"github.com/taskturkey/taskturkey-api/internal/repository"
	"github.com/taskturkey/taskturkey-api/internal/utils"
	"gorm.io/gorm"
)

var ErrTeamAccessDenied = errors.New("access denied to this team")

// ProjectService handles project business logic.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	teamRepo    repository.TeamRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, teamRepo repository.TeamRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		teamRepo:    teamRepo,
	}
}

// ListProjects returns the projects visible to the user, optionally narrowed
// to one team. A user outside the team simply gets an empty list.
func (s *ProjectService) ListProjects(userID string, teamID *string) ([]models.Project, error) {
	projects, err := s.projectRepo.ListVisible(repository.ProjectFilter{
		UserID: userID,
		TeamID: teamID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// CreateProjectInput represents input for creating a project.
type CreateProjectInput struct {
	Name        string
	Description string
	TeamID      string
	CreatorID   string
}

// CreateProject creates a project inside a team the creator belongs to. A
// missing team and a team the creator is not a member of are both denied.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	if _, err := s.teamRepo.FindMember(input.TeamID, input.CreatorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamAccessDenied
		}
		return nil, fmt.Errorf("failed to check team membership: %w", err)
	}

	project := &models.Project{
		ID:          utils.NewID(),
		Name:        input.Name,
		Description: input.Description,
		TeamID:      input.TeamID,
		CreatedBy:   input.CreatorID,
		Status:      models.ProjectStatusActive,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}
