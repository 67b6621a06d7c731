package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/taskturkey/taskturkey-api/internal/database"
	"github.com/taskturkey/taskturkey-api/internal/middleware"
	"github.com/taskturkey/taskturkey-api/internal/models"
	"github.com/taskturkey/taskturkey-api/internal/repository"
	"github.com/taskturkey/taskturkey-api/internal/services"
	"github.com/taskturkey/taskturkey-api/internal/token"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	tokens *token.Codec

	userRepo    repository.UserRepository
	teamRepo    repository.TeamRepository
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository

	authService    *services.AuthService
	teamService    *services.TeamService
	projectService *services.ProjectService
	taskService    *services.TaskService
}

// setupTestEnv builds the whole stack over an in-memory database with the
// same route table the server uses.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	tokens := token.NewCodec("test-secret")
	authService := services.NewAuthService(userRepo)
	teamService := services.NewTeamService(teamRepo)
	projectService := services.NewProjectService(projectRepo, teamRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, teamRepo)
	analyticsService := services.NewAnalyticsService(taskRepo)

	authHandler := NewAuthHandler(authService, tokens)
	teamHandler := NewTeamHandler(teamService)
	projectHandler := NewProjectHandler(projectService)
	taskHandler := NewTaskHandler(taskService)
	analyticsHandler := NewAnalyticsHandler(analyticsService)
	healthHandler := NewHealthHandler(userRepo, teamRepo, projectRepo, taskRepo)

	r := gin.New()
	requireAuth := middleware.RequireAuth(tokens, userRepo)

	api := r.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", requireAuth, authHandler.GetCurrentUser)
	api.GET("/teams", requireAuth, teamHandler.ListTeams)
	api.POST("/teams", requireAuth, teamHandler.CreateTeam)
	api.GET("/projects", requireAuth, projectHandler.ListProjects)
	api.POST("/projects", requireAuth, projectHandler.CreateProject)
	api.GET("/tasks", requireAuth, taskHandler.ListTasks)
	api.POST("/tasks", requireAuth, taskHandler.CreateTask)
	api.PUT("/tasks/:id", requireAuth, taskHandler.UpdateTask)
	api.DELETE("/tasks/:id", requireAuth, taskHandler.DeleteTask)
	api.GET("/analytics/dashboard", requireAuth, analyticsHandler.Dashboard)
	api.GET("/health", healthHandler.Health)

	return &testEnv{
		db:             db,
		router:         r,
		tokens:         tokens,
		userRepo:       userRepo,
		teamRepo:       teamRepo,
		projectRepo:    projectRepo,
		taskRepo:       taskRepo,
		authService:    authService,
		teamService:    teamService,
		projectService: projectService,
		taskService:    taskService,
	}
}

// registerUser creates a user through the service and returns it with a
// valid credential.
func (e *testEnv) registerUser(t *testing.T, email, name string) (*models.User, string) {
	t.Helper()

	user, err := e.authService.Register(services.RegisterInput{
		Email:    email,
		Password: "supersecret",
		Name:     name,
	})
	require.NoError(t, err)

	credential, err := e.tokens.Issue(user.ID)
	require.NoError(t, err)

	return user, credential
}

// createTeam creates a team owned by the user.
func (e *testEnv) createTeam(t *testing.T, creatorID, name string) *models.Team {
	t.Helper()

	team, err := e.teamService.CreateTeam(services.CreateTeamInput{
		Name:      name,
		CreatorID: creatorID,
	})
	require.NoError(t, err)
	return team
}

// createProject creates a project in the team on behalf of the user.
func (e *testEnv) createProject(t *testing.T, creatorID, teamID, name string) *models.Project {
	t.Helper()

	project, err := e.projectService.CreateProject(services.CreateProjectInput{
		Name:      name,
		TeamID:    teamID,
		CreatorID: creatorID,
	})
	require.NoError(t, err)
	return project
}

// request performs an HTTP round-trip against the test router.
func (e *testEnv) request(t *testing.T, method, path, credential string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// envelope mirrors the response wrapper for decoding in assertions.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
	Details []string        `json:"details"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()

	env := decodeEnvelope(t, w)
	require.True(t, env.Success)
	require.NoError(t, json.Unmarshal(env.Data, out))
}
