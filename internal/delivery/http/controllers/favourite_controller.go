package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"concertify/internal/delivery/http/helpers"
	"concertify/internal/delivery/http/middleware"
	"concertify/internal/domain"
)

// maxFavouriteFormSize bounds the favourite form bodies; they carry only
// short text fields.
const maxFavouriteFormSize = 64 << 10

type FavouriteController struct {
	Logger  *slog.Logger
	Service domain.FavouriteService
}

func NewFavouriteController(logger *slog.Logger, svc domain.FavouriteService) *FavouriteController {
	return &FavouriteController{
		Logger:  logger,
		Service: svc,
	}
}

// Add godoc
// @Summary Favourite a concert
// @Description Adds the concert to the authenticated user's favourites. Idempotent: returns 201 when a new favourite is created, 200 when it already existed.
// @Tags favourites
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param Favourite_concert_id formData string true "Concert ID"
// @Param Favourite_concert_image formData string false "Concert image key"
// @Param Favourite_concert_name formData string false "Concert name"
// @Param Favourite_concert_date formData string false "Concert date"
// @Param Favourite_concert_artist formData string false "Concert artist name"
// @Success 200 {object} helpers.APIResponse "Already favourited"
// @Success 201 {object} helpers.APIResponse "New favourite created"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/data/addFavourite [post]
func (c *FavouriteController) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if !parseFavouriteForm(w, r) {
		return
	}

	// The user ID comes from the verified session, not the form; the
	// Favourite_user_id field the legacy client sends is ignored.
	fav := &domain.Favourite{
		UserID:        userID,
		ConcertID:     strings.TrimSpace(r.FormValue("Favourite_concert_id")),
		ConcertImage:  r.FormValue("Favourite_concert_image"),
		ConcertName:   r.FormValue("Favourite_concert_name"),
		ConcertDate:   r.FormValue("Favourite_concert_date"),
		ConcertArtist: r.FormValue("Favourite_concert_artist"),
	}
	if fav.ConcertID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Favourite_concert_id is required")
		return
	}

	created, err := c.Service.Add(r.Context(), fav)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "concert not found")
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not add favourite")
		}
		return
	}
	if created {
		helpers.WriteJSONSuccess(w, http.StatusCreated, fav)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, fav)
}

// Remove godoc
// @Summary Unfavourite a concert
// @Description Removes the concert from the authenticated user's favourites. Idempotent: removing an absent favourite is a no-op success.
// @Tags favourites
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param Favourite_concert_id formData string true "Concert ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/data/deleteFavourite [delete]
func (c *FavouriteController) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if !parseFavouriteForm(w, r) {
		return
	}

	concertID := strings.TrimSpace(r.FormValue("Favourite_concert_id"))
	if concertID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Favourite_concert_id is required")
		return
	}

	removed, err := c.Service.Remove(r.Context(), userID, concertID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not remove favourite")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"removed": removed})
}

// List godoc
// @Summary List the authenticated user's favourites
// @Tags favourites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the favourites"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/data/favourites [get]
func (c *FavouriteController) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	favs, err := c.Service.ListByUserID(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not list favourites")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, favs)
}

// parseFavouriteForm accepts both multipart (what the web client's FormData
// produces, including on DELETE) and urlencoded bodies.
func parseFavouriteForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFavouriteFormSize)
	ct := r.Header.Get("Content-Type")
	var err error
	if strings.HasPrefix(ct, "multipart/form-data") {
		err = r.ParseMultipartForm(maxFavouriteFormSize)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid form body")
		return false
	}
	return true
}
