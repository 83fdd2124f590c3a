package handler

import (
	"context"
	"net/http"
	"strings"

	"agency-locator-api/internal/middleware"
	"agency-locator-api/internal/models"
	"agency-locator-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// LocationHandler handles location resolution and zip code lookups
type LocationHandler struct {
	service LocationService
}

// Service interface for dependency injection
type LocationService interface {
	Resolve(ctx context.Context, rawLat, rawLong, zipCode string) (service.Resolution, error)
	LookupZipCode(ctx context.Context, zipCode string) (*models.PostalLocation, error)
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

// Resolve handles GET /api/locations/resolve requests
//
//	@Summary		Resolve the requester's reference point
//	@Description	Valid lat/long wins; otherwise the zip code's location is used.
//	@Tags			locations
//	@Produce		json
//	@Param			lat			query		string	false	"Latitude"
//	@Param			long		query		string	false	"Longitude"
//	@Param			zip_code	query		string	false	"Postal code"
//	@Success		200			{object}	models.ResolvedLocation
//	@Failure		404			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/api/locations/resolve [get]
func (h *LocationHandler) Resolve(c *gin.Context) {
	resolution, err := h.service.Resolve(c.Request.Context(), c.Query("lat"), c.Query("long"), c.Query("zip_code"))
	if err != nil {
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("location resolution failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if resolution.Point == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no location could be resolved from the supplied parameters"})
		return
	}

	c.JSON(http.StatusOK, models.ResolvedLocation{
		Latitude:  resolution.Point.Latitude,
		Longitude: resolution.Point.Longitude,
		Source:    string(resolution.Source),
	})
}

// ZipCode handles GET /api/zip-codes/:zip requests
//
//	@Summary	Look up a postal location
//	@Tags		locations
//	@Produce	json
//	@Param		zip	path		string	true	"Postal code"
//	@Success	200	{object}	models.PostalLocation
//	@Failure	400	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/api/zip-codes/{zip} [get]
func (h *LocationHandler) ZipCode(c *gin.Context) {
	zipCode := strings.TrimSpace(c.Param("zip"))
	if zipCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "zip code cannot be empty"})
		return
	}

	postal, err := h.service.LookupZipCode(c.Request.Context(), zipCode)
	if err != nil {
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("zip code lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if postal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "zip code not found"})
		return
	}

	c.JSON(http.StatusOK, postal)
}
