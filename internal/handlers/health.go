package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/taskturkey/taskturkey-api/internal/errors"
	"github.com/taskturkey/taskturkey-api/internal/repository"
)

type HealthHandler struct {
	userRepo    repository.UserRepository
	teamRepo    repository.TeamRepository
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
}

func NewHealthHandler(userRepo repository.UserRepository, teamRepo repository.TeamRepository, projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository) *HealthHandler {
	return &HealthHandler{
		userRepo:    userRepo,
		teamRepo:    teamRepo,
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
	}
}

// Health reports liveness and per-collection counts. No authentication.
func (h *HealthHandler) Health(c *gin.Context) {
	users, err := h.userRepo.Count()
	if err != nil {
		apierrors.InternalError(c, "Health check failed")
		return
	}
	teams, err := h.teamRepo.Count()
	if err != nil {
		apierrors.InternalError(c, "Health check failed")
		return
	}
	projects, err := h.projectRepo.Count()
	if err != nil {
		apierrors.InternalError(c, "Health check failed")
		return
	}
	tasks, err := h.taskRepo.Count()
	if err != nil {
		apierrors.InternalError(c, "Health check failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"data": gin.H{
			"users":    users,
			"teams":    teams,
			"projects": projects,
			"tasks":    tasks,
		},
	})
}
