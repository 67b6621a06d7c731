package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taskturkey/taskturkey-api/internal/models"
)

func TestTeamHandler_CreateTeam(t *testing.T) {
	env := setupTestEnv(t)
	user, credential := env.registerUser(t, "owner@example.com", "Owner")

	w := env.request(t, http.MethodPost, "/api/teams", credential, map[string]any{
		"name":        "Development Team",
		"description": "Main development team",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var team models.Team
	decodeData(t, w, &team)
	require.Equal(t, "Development Team", team.Name)
	require.Equal(t, user.ID, team.CreatedBy)

	// Creator is a member with role admin from the start.
	require.Len(t, team.Members, 1)
	require.Equal(t, user.ID, team.Members[0].UserID)
	require.Equal(t, models.TeamRoleAdmin, team.Members[0].Role)
}

func TestTeamHandler_CreateTeamValidation(t *testing.T) {
	env := setupTestEnv(t)
	_, credential := env.registerUser(t, "owner@example.com", "Owner")

	w := env.request(t, http.MethodPost, "/api/teams", credential, map[string]any{
		"name": "x",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	require.Equal(t, "VALIDATION_ERROR", resp.Code)
	require.Contains(t, resp.Details, "name must be at least 2 characters long")
}

func TestTeamHandler_ListTeamsOnlyOwn(t *testing.T) {
	env := setupTestEnv(t)
	alice, aliceCred := env.registerUser(t, "alice@example.com", "Alice")
	bob, bobCred := env.registerUser(t, "bob@example.com", "Bob")

	env.createTeam(t, alice.ID, "Alice Team")
	env.createTeam(t, bob.ID, "Bob Team")

	w := env.request(t, http.MethodGet, "/api/teams", aliceCred, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var teams []models.Team
	decodeData(t, w, &teams)
	require.Len(t, teams, 1)
	require.Equal(t, "Alice Team", teams[0].Name)

	w = env.request(t, http.MethodGet, "/api/teams", bobCred, nil)
	var bobTeams []models.Team
	decodeData(t, w, &bobTeams)
	require.Len(t, bobTeams, 1)
	require.Equal(t, "Bob Team", bobTeams[0].Name)
}
