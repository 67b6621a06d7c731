package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	apierrors "github.com/taskturkey/taskturkey-api/internal/errors"
	"github.com/taskturkey/taskturkey-api/internal/middleware"
	"github.com/taskturkey/taskturkey-api/internal/services"
	"github.com/taskturkey/taskturkey-api/internal/validation"
)

var projectSchema = validation.Schema{
	"name":        {Required: true, MinLength: 2, MaxLength: 100},
	"description": {MaxLength: 1000},
	"teamId":      {Required: true},
}

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects returns the projects visible to the caller, optionally
// narrowed by teamId. A teamId outside the caller's teams yields an empty
// list, never an error.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, apierrors.ErrCodeAuthRequired, "Authentication required")
		return
	}

	projects, err := h.projectService.ListProjects(userID, queryPtr(c, "teamId"))
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch projects")
		return
	}

	respondData(c, http.StatusOK, projects)
}

// CreateProject creates a project in a team the caller belongs to.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
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

	if details := validation.Validate(body, projectSchema); len(details) > 0 {
		apierrors.ValidationFailed(c, details)
		return
	}

	name, _ := body["name"].(string)
	description, _ := body["description"].(string)
	teamID, _ := body["teamId"].(string)

	project, err := h.projectService.CreateProject(services.CreateProjectInput{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		TeamID:      teamID,
		CreatorID:   userID,
	})
	if err != nil {
		if errors.Is(err, services.ErrTeamAccessDenied) {
			apierrors.Forbidden(c, "Access denied to this team")
			return
		}
		apierrors.InternalError(c, "Failed to create project")
		return
	}

	respondData(c, http.StatusCreated, project)
}
