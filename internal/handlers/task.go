package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/taskturkey/taskturkey-api/internal/errors"
	"github.com/taskturkey/taskturkey-api/internal/middleware"
	"github.com/taskturkey/taskturkey-api/internal/services"
	"github.com/taskturkey/taskturkey-api/internal/validation"
)

var taskSchema = validation.Schema{
	"title":       {Required: true, MinLength: 2, MaxLength: 200},
	"description": {MaxLength: 2000},
	"projectId":   {Required: true},
	"priority":    {Required: true},
}

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns the tasks visible to the caller. All provided filters
// (projectId, assignedTo, status) are ANDed.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, apierrors.ErrCodeAuthRequired, "Authentication required")
		return
	}

	tasks, err := h.taskService.ListTasks(services.ListTasksInput{
		UserID:     userID,
		ProjectID:  queryPtr(c, "projectId"),
		AssignedTo: queryPtr(c, "assignedTo"),
		Status:     queryPtr(c, "status"),
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	respondData(c, http.StatusOK, tasks)
}

// CreateTask creates a new task in a project the caller can access.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, apierrors.ErrCodeAuthRequired, "Authentication required")
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		apierrors.BadRequest(c, apierrors.ErrCodeValidation, "Invalid request body")
		return
	}

	if details := validation.Validate(body, taskSchema); len(details) > 0 {
		apierrors.ValidationFailed(c, details)
		return
	}

	title, _ := body["title"].(string)
	description, _ := body["description"].(string)
	projectID, _ := body["projectId"].(string)
	priority, _ := body["priority"].(string)

	var assignedTo *string
	if value, ok := body["assignedTo"].(string); ok && value != "" {
		assignedTo = &value
	}

	var dueDate *time.Time
	if value, ok := body["dueDate"].(string); ok {
		parsed, err := parseDueDate(value)
		if err != nil {
			apierrors.ValidationFailed(c, []string{"dueDate must be a valid date"})
			return
		}
		dueDate = &parsed
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		ProjectID:   projectID,
		AssignedTo:  assignedTo,
		Priority:    priority,
		DueDate:     dueDate,
		CreatorID:   userID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	respondData(c, http.StatusCreated, task)
}

// UpdateTask applies a partial update to a task. Only fields present in the
// body are touched.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, apierrors.ErrCodeAuthRequired, "Authentication required")
		return
	}

	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		apierrors.BadRequest(c, apierrors.ErrCodeValidation, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(c.Param("id"), userID, updates)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	respondData(c, http.StatusOK, task)
}

// DeleteTask deletes a task and every comment referencing it.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, apierrors.ErrCodeAuthRequired, "Authentication required")
		return
	}

	if err := h.taskService.DeleteTask(c.Param("id"), userID); err != nil {
		respondTaskError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Task deleted successfully")
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, apierrors.ErrCodeTaskNotFound, "Task not found")
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, apierrors.ErrCodeProjectNotFound, "Project not found")
	case errors.Is(err, services.ErrTeamNotFound):
		apierrors.NotFound(c, apierrors.ErrCodeTeamNotFound, "Team not found")
	case errors.Is(err, services.ErrProjectAccessDenied):
		apierrors.Forbidden(c, "Access denied to this project")
	case errors.Is(err, services.ErrTaskAccessDenied):
		apierrors.Forbidden(c, "Access denied to this task")
	case errors.Is(err, services.ErrDeleteNotPermitted):
		apierrors.Forbidden(c, "Access denied - insufficient permissions")
	case errors.Is(err, services.ErrInvalidStatus):
		apierrors.BadRequest(c, apierrors.ErrCodeInvalidStatus, "Invalid status value")
	case errors.Is(err, services.ErrInvalidPriority):
		apierrors.BadRequest(c, apierrors.ErrCodeInvalidPriority, "Invalid priority value")
	case errors.Is(err, services.ErrInvalidDueDate):
		apierrors.ValidationFailed(c, []string{"dueDate must be a valid date"})
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}

func parseDueDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
