package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/taskturkey/taskturkey-api/internal/database"
	"github.com/taskturkey/taskturkey-api/internal/models"
	"github.com/taskturkey/taskturkey-api/internal/repository"
	"github.com/taskturkey/taskturkey-api/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type taskServiceEnv struct {
	db          *gorm.DB
	taskService *TaskService

	user    *models.User
	team    *models.Team
	project *models.Project
}

func setupTaskServiceEnv(t *testing.T) *taskServiceEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	user := &models.User{
		ID:           utils.NewID(),
		Email:        "owner@example.com",
		PasswordHash: "irrelevant",
		Name:         "Owner",
		Role:         models.UserRoleUser,
		LastActive:   time.Now(),
	}
	require.NoError(t, db.Create(user).Error)

	team := &models.Team{
		ID:        utils.NewID(),
		Name:      "Team",
		CreatedBy: user.ID,
	}
	require.NoError(t, db.Create(team).Error)
	require.NoError(t, db.Create(&models.TeamMember{
		TeamID:   team.ID,
		UserID:   user.ID,
		Role:     models.TeamRoleAdmin,
		JoinedAt: time.Now(),
	}).Error)

	project := &models.Project{
		ID:        utils.NewID(),
		Name:      "Project",
		TeamID:    team.ID,
		CreatedBy: user.ID,
		Status:    models.ProjectStatusActive,
	}
	require.NoError(t, db.Create(project).Error)

	taskRepo := repository.NewTaskRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	teamRepo := repository.NewTeamRepository(db)

	return &taskServiceEnv{
		db:          db,
		taskService: NewTaskService(taskRepo, projectRepo, teamRepo),
		user:        user,
		team:        team,
		project:     project,
	}
}

func TestTaskService_DanglingProjectDeniesListing(t *testing.T) {
	env := setupTaskServiceEnv(t)

	_, err := env.taskService.CreateTask(CreateTaskInput{
		Title:     "Orphan-to-be",
		ProjectID: env.project.ID,
		Priority:  "low",
		CreatorID: env.user.ID,
	})
	require.NoError(t, err)

	// Remove the project out from under the task. The broken hop must deny
	// access, not error.
	require.NoError(t, env.db.Delete(&models.Project{}, "id = ?", env.project.ID).Error)

	tasks, err := env.taskService.ListTasks(ListTasksInput{UserID: env.user.ID})
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestTaskService_DanglingProjectOnUpdate(t *testing.T) {
	env := setupTaskServiceEnv(t)

	task, err := env.taskService.CreateTask(CreateTaskInput{
		Title:     "Orphan-to-be",
		ProjectID: env.project.ID,
		Priority:  "low",
		CreatorID: env.user.ID,
	})
	require.NoError(t, err)

	require.NoError(t, env.db.Delete(&models.Project{}, "id = ?", env.project.ID).Error)

	_, err = env.taskService.UpdateTask(task.ID, env.user.ID, map[string]any{"title": "New"})
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestTaskService_UpdateIgnoresUnknownFields(t *testing.T) {
	env := setupTaskServiceEnv(t)

	task, err := env.taskService.CreateTask(CreateTaskInput{
		Title:     "Locked down",
		ProjectID: env.project.ID,
		Priority:  "low",
		CreatorID: env.user.ID,
	})
	require.NoError(t, err)

	// Only the allow-listed fields may change; createdBy and projectId are
	// not on the list.
	updated, err := env.taskService.UpdateTask(task.ID, env.user.ID, map[string]any{
		"createdBy": "someone-else",
		"projectId": utils.NewID(),
		"title":     "Renamed",
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Title)
	require.Equal(t, env.user.ID, updated.CreatedBy)
	require.Equal(t, env.project.ID, updated.ProjectID)
}

func TestTaskService_AssignedToIsUnchecked(t *testing.T) {
	env := setupTaskServiceEnv(t)

	ghost := utils.NewID()
	task, err := env.taskService.CreateTask(CreateTaskInput{
		Title:      "Assigned to nobody",
		ProjectID:  env.project.ID,
		Priority:   "low",
		AssignedTo: &ghost,
		CreatorID:  env.user.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, task.AssignedTo)
	require.Equal(t, ghost, *task.AssignedTo)
}
