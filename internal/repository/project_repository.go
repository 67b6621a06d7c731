package repository

import (
	"github.com/taskturkey/taskturkey-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListVisible lists projects whose owning team the user belongs to. A project
// whose team no longer exists drops out of the join, which denies access
// rather than erroring.
func (r *GormProjectRepository) ListVisible(filter ProjectFilter) ([]models.Project, error) {
	var projects []models.Project

	query := r.db.Model(&models.Project{}).
		Joins("JOIN teams ON teams.id = projects.team_id AND teams.deleted_at IS NULL").
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ?", filter.UserID)

	if filter.TeamID != nil {
		query = query.Where("projects.team_id = ?", *filter.TeamID)
	}

	if err := query.Order("projects.created_at ASC").Find(&projects).Error; err != nil {
		return nil, err
	}

	return projects, nil
}

// Count returns the number of projects
func (r *GormProjectRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}
