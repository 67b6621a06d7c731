package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taskturkey/taskturkey-api/internal/models"
)

func TestProjectHandler_CreateProject(t *testing.T) {
	env := setupTestEnv(t)
	user, credential := env.registerUser(t, "owner@example.com", "Owner")
	team := env.createTeam(t, user.ID, "Team")

	w := env.request(t, http.MethodPost, "/api/projects", credential, map[string]any{
		"name":   "MVP",
		"teamId": team.ID,
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var project models.Project
	decodeData(t, w, &project)
	require.Equal(t, "MVP", project.Name)
	require.Equal(t, team.ID, project.TeamID)
	require.Equal(t, models.ProjectStatusActive, project.Status)
}

func TestProjectHandler_CreateProjectDeniedOutsideTeam(t *testing.T) {
	env := setupTestEnv(t)
	alice, _ := env.registerUser(t, "alice@example.com", "Alice")
	_, bobCred := env.registerUser(t, "bob@example.com", "Bob")
	team := env.createTeam(t, alice.ID, "Alice Team")

	w := env.request(t, http.MethodPost, "/api/projects", bobCred, map[string]any{
		"name":   "Sneaky",
		"teamId": team.ID,
	})

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "ACCESS_DENIED", decodeEnvelope(t, w).Code)
}

func TestProjectHandler_ListProjectsOutsideTeamIsEmpty(t *testing.T) {
	env := setupTestEnv(t)
	alice, _ := env.registerUser(t, "alice@example.com", "Alice")
	_, bobCred := env.registerUser(t, "bob@example.com", "Bob")
	team := env.createTeam(t, alice.ID, "Alice Team")
	env.createProject(t, alice.ID, team.ID, "Hidden")

	// A user outside the team gets an empty list, never an error.
	w := env.request(t, http.MethodGet, "/api/projects?teamId="+team.ID, bobCred, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var projects []models.Project
	decodeData(t, w, &projects)
	require.Empty(t, projects)
}

func TestProjectHandler_ListProjectsFiltersByTeam(t *testing.T) {
	env := setupTestEnv(t)
	user, credential := env.registerUser(t, "owner@example.com", "Owner")
	teamA := env.createTeam(t, user.ID, "Team A")
	teamB := env.createTeam(t, user.ID, "Team B")
	env.createProject(t, user.ID, teamA.ID, "A1")
	env.createProject(t, user.ID, teamB.ID, "B1")

	w := env.request(t, http.MethodGet, "/api/projects", credential, nil)
	var all []models.Project
	decodeData(t, w, &all)
	require.Len(t, all, 2)

	w = env.request(t, http.MethodGet, "/api/projects?teamId="+teamA.ID, credential, nil)
	var filtered []models.Project
	decodeData(t, w, &filtered)
	require.Len(t, filtered, 1)
	require.Equal(t, "A1", filtered[0].Name)
}
