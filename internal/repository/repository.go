package repository

import (
	"github.com/taskturkey/taskturkey-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByEmail finds a user by lowercased email
	FindByEmail(email string) (*models.User, error)

	// Update updates a user
	Update(user *models.User) error

	// Count returns the number of users
	Count() (int64, error)
}

// TeamRepository defines the interface for team and membership data access
type TeamRepository interface {
	// CreateWithCreator creates a team and its creator membership atomically
	CreateWithCreator(team *models.Team, member *models.TeamMember) error

	// FindByID finds a team by ID
	FindByID(id string) (*models.Team, error)

	// ListByUserID lists the teams a user is a member of
	ListByUserID(userID string) ([]models.Team, error)

	// FindMember finds a specific team membership
	FindMember(teamID, userID string) (*models.TeamMember, error)

	// Count returns the number of teams
	Count() (int64, error)
}

// ProjectFilter holds the criteria for listing projects visible to a user
type ProjectFilter struct {
	UserID string
	TeamID *string
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID
	FindByID(id string) (*models.Project, error)

	// ListVisible lists projects whose owning team the user belongs to
	ListVisible(filter ProjectFilter) ([]models.Project, error)

	// Count returns the number of projects
	Count() (int64, error)
}

// TaskFilter holds the criteria for listing tasks visible to a user.
// All provided filters are ANDed.
type TaskFilter struct {
	UserID     string
	ProjectID  *string
	AssignedTo *string
	Status     *string
	TeamID     *string
}

// TaskRepository defines the interface for task and comment data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id string) (*models.Task, error)

	// ListVisible lists tasks reachable from the user via team membership
	ListVisible(filter TaskFilter) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// DeleteWithComments deletes a task and every comment referencing it
	// in a single transaction
	DeleteWithComments(id string) error

	// CreateComment creates a comment on a task
	CreateComment(comment *models.Comment) error

	// ListComments lists the comments of a task
	ListComments(taskID string) ([]models.Comment, error)

	// Count returns the number of tasks
	Count() (int64, error)
}
