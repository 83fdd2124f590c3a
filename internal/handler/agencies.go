package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"agency-locator-api/internal/geo"
	"agency-locator-api/internal/middleware"
	"agency-locator-api/internal/models"
	"agency-locator-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AgencyHandler handles agency search requests
type AgencyHandler struct {
	service AgencyService
}

// Service interface for dependency injection
type AgencyService interface {
	Search(context.Context, service.SearchParams) (*models.AgencyResponse, error)
}

// NewAgencyHandler creates a new agency handler
func NewAgencyHandler(svc AgencyService) *AgencyHandler {
	return &AgencyHandler{service: svc}
}

// ListAgencies handles GET /api/agencies requests
//
//	@Summary		Search agencies and their events
//	@Description	Filters active agencies by zip code, event date, service category and distance. Without filters the list is empty.
//	@Tags			agencies
//	@Produce		json
//	@Param			zip_code			query		string	false	"Postal code"
//	@Param			lat					query		string	false	"Requester latitude"
//	@Param			long				query		string	false	"Requester longitude"
//	@Param			event_date			query		string	false	"Service date (YYYY-MM-DD)"
//	@Param			service_category	query		string	false	"Service category name"
//	@Param			distance			query		number	false	"Maximum distance in miles"
//	@Param			sort				query		string	false	"source (default) or distance"
//	@Success		200					{object}	models.AgencyResponse
//	@Failure		400					{object}	map[string]string
//	@Failure		500					{object}	map[string]string
//	@Router			/api/agencies [get]
func (h *AgencyHandler) ListAgencies(c *gin.Context) {
	params := service.SearchParams{
		ZipCode:         c.Query("zip_code"),
		Lat:             c.Query("lat"),
		Long:            c.Query("long"),
		ServiceCategory: c.Query("service_category"),
	}

	if raw := strings.TrimSpace(c.Query("event_date")); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event_date, expected YYYY-MM-DD"})
			return
		}
		params.EventDate = &date
	}

	if raw := strings.TrimSpace(c.Query("distance")); raw != "" {
		if !geo.IsNumeric(raw) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid distance format"})
			return
		}
		distance, err := strconv.ParseFloat(raw, 64)
		if err != nil || distance < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "distance must be a non-negative number"})
			return
		}
		params.MaxDistance = &distance
	}

	order, err := service.ParseSortOrder(c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sort must be 'source' or 'distance'"})
		return
	}
	params.Sort = order

	resp, err := h.service.Search(c.Request.Context(), params)
	if err != nil {
		event := log.Error().Err(err).Str("request_id", middleware.GetRequestID(c))
		var formatErr *service.FormatError
		if errors.As(err, &formatErr) {
			event = event.Int("time_key", formatErr.Key)
		}
		event.Msg("agency search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
