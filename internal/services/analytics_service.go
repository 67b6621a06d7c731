package services

import (
	"fmt"
	"math"
	"time"

	"github.com/taskturkey/taskturkey-api/internal/models"
	"github.com/taskturkey/taskturkey-api/internal/repository"
)

// PriorityCounts is the per-priority histogram in a dashboard summary.
type PriorityCounts struct {
	Urgent int `json:"urgent"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// DashboardSummary aggregates the caller's visible tasks.
type DashboardSummary struct {
	TotalTasks      int            `json:"totalTasks"`
	CompletedTasks  int            `json:"completedTasks"`
	InProgressTasks int            `json:"inProgressTasks"`
	TodoTasks       int            `json:"todoTasks"`
	TasksByPriority PriorityCounts `json:"tasksByPriority"`
	OverdueTasks    int            `json:"overdueTasks"`
	CompletionRate  int            `json:"completionRate"`
}

// AnalyticsService derives dashboard summaries from the task collection. The
// summary is a pure function of current state, recomputed per call.
type AnalyticsService struct {
	taskRepo repository.TaskRepository
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(taskRepo repository.TaskRepository) *AnalyticsService {
	return &AnalyticsService{
		taskRepo: taskRepo,
	}
}

// Dashboard summarizes the tasks visible to the user, optionally narrowed to
// one team or project.
func (s *AnalyticsService) Dashboard(userID string, teamID, projectID *string) (*DashboardSummary, error) {
	tasks, err := s.taskRepo.ListVisible(repository.TaskFilter{
		UserID:    userID,
		TeamID:    teamID,
		ProjectID: projectID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	summary := &DashboardSummary{
		TotalTasks: len(tasks),
	}

	now := time.Now()
	for _, task := range tasks {
		switch task.Status {
		case models.TaskStatusDone:
			summary.CompletedTasks++
		case models.TaskStatusInProgress:
			summary.InProgressTasks++
		case models.TaskStatusTodo:
			summary.TodoTasks++
		}

		switch task.Priority {
		case models.TaskPriorityUrgent:
			summary.TasksByPriority.Urgent++
		case models.TaskPriorityHigh:
			summary.TasksByPriority.High++
		case models.TaskPriorityMedium:
			summary.TasksByPriority.Medium++
		case models.TaskPriorityLow:
			summary.TasksByPriority.Low++
		}

		if task.DueDate != nil && task.DueDate.Before(now) && task.Status != models.TaskStatusDone {
			summary.OverdueTasks++
		}
	}

	if summary.TotalTasks > 0 {
		summary.CompletionRate = int(math.Round(float64(summary.CompletedTasks) / float64(summary.TotalTasks) * 100))
	}

	return summary, nil
}
