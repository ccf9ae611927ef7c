package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/timeclock-api/internal/dto"
	apierrors "github.com/yukikurage/timeclock-api/internal/errors"
	"github.com/yukikurage/timeclock-api/internal/services"
)

// LocationHandler serves the job site endpoints.
type LocationHandler struct {
	locationService *services.LocationService
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(locationService *services.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// ListLocations returns every location.
func (h *LocationHandler) ListLocations(c *gin.Context) {
	locations, err := h.locationService.ListLocations(c.Request.Context())
	if err != nil {
		respondLocationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationDTOs(locations))
}

// LocationsGeoJSON returns every location as a GeoJSON FeatureCollection.
func (h *LocationHandler) LocationsGeoJSON(c *gin.Context) {
	locations, err := h.locationService.ListLocations(c.Request.Context())
	if err != nil {
		respondLocationError(c, err)
		return
	}

	c.Header("Content-Type", "application/geo+json")
	c.JSON(http.StatusOK, dto.ToLocationFeatureCollection(locations))
}

// CreateLocation stores a job site.
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	type CreateLocationRequest struct {
		Name   string  `json:"name" binding:"required"`
		Lat    float64 `json:"lat"`
		Lon    float64 `json:"lon"`
		Radius float64 `json:"radius" binding:"gte=0"`
	}

	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	location, err := h.locationService.CreateLocation(c.Request.Context(), services.CreateLocationInput{
		Name:      req.Name,
		Latitude:  req.Lat,
		Longitude: req.Lon,
		Radius:    req.Radius,
	})
	if err != nil {
		respondLocationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": location.ID})
}

// DeleteLocation removes a job site and its assignments.
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.locationService.DeleteLocation(c.Request.Context(), id); err != nil {
		respondLocationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location deleted successfully"})
}

func respondLocationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrLocationNameRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrLocationNotFound):
		apierrors.NotFound(c, "Location not found")
	default:
		respondInternalError(c, err)
	}
}
