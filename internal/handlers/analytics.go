package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/taskturkey/taskturkey-api/internal/errors"
	"github.com/taskturkey/taskturkey-api/internal/middleware"
	"github.com/taskturkey/taskturkey-api/internal/services"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// Dashboard summarizes the caller's visible tasks, optionally narrowed by
// teamId and projectId.
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, apierrors.ErrCodeAuthRequired, "Authentication required")
		return
	}

	summary, err := h.analyticsService.Dashboard(userID, queryPtr(c, "teamId"), queryPtr(c, "projectId"))
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch analytics")
		return
	}

	respondData(c, http.StatusOK, summary)
}
