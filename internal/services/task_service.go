package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/taskturkey/taskturkey-api/internal/models"
	"github.com/taskturkey/taskturkey-api/internal/repository"
	"github.com/taskturkey/taskturkey-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrProjectNotFound     = errors.New("project not found")
	ErrTeamNotFound        = errors.New("team not found")
	ErrProjectAccessDenied = errors.New("access denied to this project")
	ErrTaskAccessDenied    = errors.New("access denied to this task")
	ErrDeleteNotPermitted  = errors.New("only the task creator or a team admin can delete a task")
	ErrInvalidStatus       = errors.New("invalid status value")
	ErrInvalidPriority     = errors.New("invalid priority value")
	ErrInvalidDueDate      = errors.New("invalid due date value")
)

// TaskService handles task business logic.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	teamRepo    repository.TeamRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, teamRepo repository.TeamRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		teamRepo:    teamRepo,
	}
}

// ListTasksInput represents filters for listing tasks.
type ListTasksInput struct {
	UserID     string
	ProjectID  *string
	AssignedTo *string
	Status     *string
}

// ListTasks returns the tasks visible to the user, AND-narrowed by the
// provided filters.
func (s *TaskService) ListTasks(input ListTasksInput) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListVisible(repository.TaskFilter{
		UserID:     input.UserID,
		ProjectID:  input.ProjectID,
		AssignedTo: input.AssignedTo,
		Status:     input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	Title       string
	Description string
	ProjectID   string
	AssignedTo  *string
	Priority    string
	DueDate     *time.Time
	CreatorID   string
}

// CreateTask creates a task in a project the creator can access. Existence is
// checked before access, so a missing project is not-found while a foreign
// project is access-denied.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	project, err := s.projectRepo.FindByID(input.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if _, err := s.teamRepo.FindMember(project.TeamID, input.CreatorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectAccessDenied
		}
		return nil, fmt.Errorf("failed to check team membership: %w", err)
	}

	if !models.ValidTaskPriority(models.TaskPriority(input.Priority)) {
		return nil, ErrInvalidPriority
	}

	task := &models.Task{
		ID:          utils.NewID(),
		Title:       input.Title,
		Description: input.Description,
		ProjectID:   input.ProjectID,
		AssignedTo:  input.AssignedTo,
		CreatedBy:   input.CreatorID,
		Status:      models.TaskStatusTodo,
		Priority:    models.TaskPriority(input.Priority),
		DueDate:     input.DueDate,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask applies a partial update to a task. Only the allow-listed fields
// can be overwritten; fields absent from updates are left untouched. The
// merged status and priority must still be in their closed sets or the task
// stays unchanged.
func (s *TaskService) UpdateTask(taskID, actorID string, updates map[string]any) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.ensureTaskAccess(task, actorID); err != nil {
		return nil, err
	}

	if title, ok := updates["title"]; ok {
		if titleStr, ok := title.(string); ok {
			task.Title = titleStr
		}
	}
	if description, ok := updates["description"]; ok {
		if descStr, ok := description.(string); ok {
			task.Description = descStr
		}
	}
	if assignedTo, ok := updates["assignedTo"]; ok {
		if assignedTo == nil {
			task.AssignedTo = nil
		} else if userStr, ok := assignedTo.(string); ok {
			task.AssignedTo = &userStr
		}
	}
	if status, ok := updates["status"]; ok {
		statusStr, ok := status.(string)
		if !ok {
			return nil, ErrInvalidStatus
		}
		task.Status = models.TaskStatus(statusStr)
	}
	if priority, ok := updates["priority"]; ok {
		priorityStr, ok := priority.(string)
		if !ok {
			return nil, ErrInvalidPriority
		}
		task.Priority = models.TaskPriority(priorityStr)
	}
	if raw, ok := updates["dueDate"]; ok {
		switch value := raw.(type) {
		case nil:
			task.DueDate = nil
		case string:
			parsed, err := parseDueDate(value)
			if err != nil {
				return nil, ErrInvalidDueDate
			}
			task.DueDate = &parsed
		default:
			return nil, ErrInvalidDueDate
		}
	}

	if !models.ValidTaskStatus(task.Status) {
		return nil, ErrInvalidStatus
	}
	if !models.ValidTaskPriority(task.Priority) {
		return nil, ErrInvalidPriority
	}

	task.UpdatedAt = time.Now()
	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask deletes a task and cascades to its comments. Only the task
// creator or an admin of the owning team may delete.
func (s *TaskService) DeleteTask(taskID, actorID string) error {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	project, err := s.projectRepo.FindByID(task.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if _, err := s.teamRepo.FindByID(project.TeamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to find team: %w", err)
	}

	member, err := s.teamRepo.FindMember(project.TeamID, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDeleteNotPermitted
		}
		return fmt.Errorf("failed to check team membership: %w", err)
	}

	if task.CreatedBy != actorID && member.Role != models.TeamRoleAdmin {
		return ErrDeleteNotPermitted
	}

	if err := s.taskRepo.DeleteWithComments(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// ensureTaskAccess walks task -> project -> team -> membership. A dangling
// project is reported as not-found, matching how existence is checked before
// access.
func (s *TaskService) ensureTaskAccess(task *models.Task, userID string) error {
	project, err := s.projectRepo.FindByID(task.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if _, err := s.teamRepo.FindMember(project.TeamID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskAccessDenied
		}
		return fmt.Errorf("failed to check team membership: %w", err)
	}

	return nil
}

func parseDueDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
