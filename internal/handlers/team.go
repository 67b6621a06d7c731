package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	apierrors "github.com/taskturkey/taskturkey-api/internal/errors"
	"github.com/taskturkey/taskturkey-api/internal/middleware"
	"github.com/taskturkey/taskturkey-api/internal/services"
	"github.com/taskturkey/taskturkey-api/internal/validation"
)

var teamSchema = validation.Schema{
	"name":        {Required: true, MinLength: 2, MaxLength: 100},
	"description": {MaxLength: 500},
}

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeams returns the caller's teams.
func (h *TeamHandler) ListTeams(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, apierrors.ErrCodeAuthRequired, "Authentication required")
		return
	}

	teams, err := h.teamService.ListTeams(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch teams")
		return
	}

	respondData(c, http.StatusOK, teams)
}

// CreateTeam creates a team with the caller as its admin.
func (h *TeamHandler) CreateTeam(c *gin.Context) {
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

	if details := validation.Validate(body, teamSchema); len(details) > 0 {
		apierrors.ValidationFailed(c, details)
		return
	}

	name, _ := body["name"].(string)
	description, _ := body["description"].(string)

	team, err := h.teamService.CreateTeam(services.CreateTeamInput{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		CreatorID:   userID,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to create team")
		return
	}

	respondData(c, http.StatusCreated, team)
}
