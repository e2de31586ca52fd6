package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"concertify/internal/delivery/http/helpers"
	"concertify/internal/domain"
)

// ConcertListResponse is the response body for GET /api/data/concertData,
// matching the {data: [...]} shape the web client consumes.
// swagger:model ConcertListResponse
type ConcertListResponse struct {
	Data []*domain.Concert `json:"data"`
}

type ConcertController struct {
	Logger  *slog.Logger
	Service domain.ConcertService
}

func NewConcertController(logger *slog.Logger, svc domain.ConcertService) *ConcertController {
	return &ConcertController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List all concerts
// @Description Returns the full concert collection the listing and detail pages render from.
// @Tags concerts
// @Produce json
// @Success 200 {object} controllers.ConcertListResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/data/concertData [get]
func (c *ConcertController) List(w http.ResponseWriter, r *http.Request) {
	concerts, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not list concerts")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ConcertListResponse{Data: concerts})
}

// GetByID godoc
// @Summary Get one concert by ID
// @Description Resolves a single concert server-side. An unknown ID answers 404 not_found, so clients can render an explicit not-found state instead of loading forever.
// @Tags concerts
// @Produce json
// @Param concertID path string true "Concert ID"
// @Success 200 {object} helpers.APIResponse "data contains the concert"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/data/concertData/{concertID} [get]
func (c *ConcertController) GetByID(w http.ResponseWriter, r *http.Request) {
	concertID := r.PathValue("concertID")
	if concertID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing concertID")
		return
	}
	concert, err := c.Service.GetByID(r.Context(), concertID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "concert not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not get concert")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, concert)
}
