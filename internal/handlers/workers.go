package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/timeclock-api/internal/dto"
	apierrors "github.com/yukikurage/timeclock-api/internal/errors"
	"github.com/yukikurage/timeclock-api/internal/services"
)

// WorkerHandler serves the per-worker aggregated views.
type WorkerHandler struct {
	profileService *services.ProfileService
	summaryService *services.ReportSummaryService
}

// NewWorkerHandler creates a new WorkerHandler.
func NewWorkerHandler(profileService *services.ProfileService, summaryService *services.ReportSummaryService) *WorkerHandler {
	return &WorkerHandler{
		profileService: profileService,
		summaryService: summaryService,
	}
}

// GetProfile returns the worker with this month's logs, hours and assignments.
func (h *WorkerHandler) GetProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	profile, err := h.profileService.GetWorkerProfile(c.Request.Context(), id)
	if err != nil {
		respondWorkerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WorkerProfileDTO{
		ID:           profile.User.ID,
		Username:     profile.User.Username,
		Role:         profile.User.Role,
		Month:        profile.Month,
		MonthlyHours: profile.MonthlyHours,
		TotalMinutes: profile.TotalMinutes,
		Logs:         dto.ToTimeLogDTOs(profile.Logs),
		Assignments:  dto.ToProfileAssignmentDTOs(profile.Assignments),
	})
}

// GetReportSummary returns a generated summary of this month's reports.
func (h *WorkerHandler) GetReportSummary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	summary, err := h.summaryService.SummarizeMonthlyReports(c.Request.Context(), id)
	if err != nil {
		respondWorkerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReportSummaryDTO{
		UserID:      summary.UserID,
		Month:       summary.Month,
		ReportCount: summary.ReportCount,
		Summary:     summary.Summary,
	})
}

func respondWorkerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrAIServiceNotConfigured):
		apierrors.ServiceUnavailable(c, "Report summaries are not configured")
	default:
		respondInternalError(c, err)
	}
}
