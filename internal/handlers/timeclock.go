package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/timeclock-api/internal/constants"
	"github.com/yukikurage/timeclock-api/internal/dto"
	apierrors "github.com/yukikurage/timeclock-api/internal/errors"
	"github.com/yukikurage/timeclock-api/internal/services"
)

// TimeClockHandler serves clock-in/out, reports and the log listing.
type TimeClockHandler struct {
	timeClockService *services.TimeClockService
}

// NewTimeClockHandler creates a new TimeClockHandler.
func NewTimeClockHandler(timeClockService *services.TimeClockService) *TimeClockHandler {
	return &TimeClockHandler{timeClockService: timeClockService}
}

type clockRequest struct {
	UserID bodyID   `json:"userId" binding:"required"`
	Lat    *float64 `json:"lat"`
	Lon    *float64 `json:"lon"`
}

func (r clockRequest) toInput() services.ClockInput {
	return services.ClockInput{UserID: uint64(r.UserID), Lat: r.Lat, Lon: r.Lon}
}

// ClockIn opens a work session.
func (h *TimeClockHandler) ClockIn(c *gin.Context) {
	var req clockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	log, err := h.timeClockService.ClockIn(c.Request.Context(), req.toInput())
	if err != nil {
		respondTimeClockError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      log.ID,
		"message": "Clocked in successfully",
	})
}

// ClockOut closes the most recent open work session.
func (h *TimeClockHandler) ClockOut(c *gin.Context) {
	var req clockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if _, err := h.timeClockService.ClockOut(c.Request.Context(), req.toInput()); err != nil {
		respondTimeClockError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Clocked out successfully"})
}

// SubmitReport accepts multipart userId, text and an optional photo.
func (h *TimeClockHandler) SubmitReport(c *gin.Context) {
	userID, err := strconv.ParseUint(c.PostForm("userId"), 10, 64)
	if err != nil || userID == 0 {
		apierrors.BadRequest(c, "Invalid userId")
		return
	}

	input := services.ReportInput{
		UserID: userID,
		Text:   c.PostForm("text"),
	}

	fileHeader, err := c.FormFile(constants.PhotoFormField)
	switch {
	case err == nil:
		file, err := fileHeader.Open()
		if err != nil {
			apierrors.BadRequest(c, "Invalid photo upload")
			return
		}
		defer file.Close()
		input.Photo = &services.Photo{Filename: fileHeader.Filename, Content: file}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		apierrors.BadRequest(c, "Invalid multipart form")
		return
	}

	photoPath, err := h.timeClockService.SubmitReport(c.Request.Context(), input)
	if err != nil {
		respondTimeClockError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Report submitted successfully",
		"photoPath": photoPath,
	})
}

// ListLogs returns every time log with its username.
func (h *TimeClockHandler) ListLogs(c *gin.Context) {
	logs, err := h.timeClockService.ListLogs(c.Request.Context())
	if err != nil {
		respondTimeClockError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTimeLogWithUserDTOs(logs))
}

func respondTimeClockError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoActiveAssignment):
		apierrors.Forbidden(c, apierrors.ErrCodeNoActiveAssignment, "You must be assigned to a work location to clock in or out")
	case errors.Is(err, services.ErrNoOpenTimeLog):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeNoOpenLog, "No active clock-in found")
	case errors.Is(err, services.ErrNoTimeLog):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeNoTimeLog, "No time log found to attach report")
	default:
		respondInternalError(c, err)
	}
}
