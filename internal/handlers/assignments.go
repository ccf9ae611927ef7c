package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/timeclock-api/internal/dto"
	apierrors "github.com/yukikurage/timeclock-api/internal/errors"
	"github.com/yukikurage/timeclock-api/internal/models"
	"github.com/yukikurage/timeclock-api/internal/services"
)

// AssignmentHandler serves the worker assignment endpoints.
type AssignmentHandler struct {
	assignmentService *services.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(assignmentService *services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

// ListAssignments returns all assignments with username and location name.
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	assignments, err := h.assignmentService.ListAssignments(c.Request.Context())
	if err != nil {
		respondAssignmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentDTOs(assignments))
}

// CreateAssignment assigns a worker to a location.
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	type CreateAssignmentRequest struct {
		UserID     bodyID `json:"userId" binding:"required"`
		LocationID bodyID `json:"locationId" binding:"required"`
	}

	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	assignment, err := h.assignmentService.CreateAssignment(c.Request.Context(), uint64(req.UserID), uint64(req.LocationID))
	if err != nil {
		respondAssignmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      assignment.ID,
		"message": "Worker assigned successfully",
	})
}

// UpdateAssignmentStatus switches an assignment between active and finished.
func (h *AssignmentHandler) UpdateAssignmentStatus(c *gin.Context) {
	type UpdateStatusRequest struct {
		Status string `json:"status"`
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.assignmentService.UpdateStatus(c.Request.Context(), id, models.AssignmentStatus(req.Status)); err != nil {
		respondAssignmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Assignment status updated successfully"})
}

// DeleteAssignment removes an assignment.
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.assignmentService.DeleteAssignment(c.Request.Context(), id); err != nil {
		respondAssignmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Assignment deleted successfully"})
}

func respondAssignmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidAssignmentStatus):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeInvalidStatus, `Invalid status. Must be "active" or "finished"`)
	case errors.Is(err, services.ErrAssignmentNotFound):
		apierrors.NotFound(c, "Assignment not found")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrLocationNotFound):
		apierrors.NotFound(c, "Location not found")
	default:
		respondInternalError(c, err)
	}
}
