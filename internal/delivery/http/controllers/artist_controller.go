package controllers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"concertify/internal/delivery/http/helpers"
	"concertify/internal/domain"
)

const (
	// maxUploadSize bounds the multipart body; artist images are small.
	maxUploadSize = 5 << 20 // 5MB
	fileField     = "file"
)

// allowedImageExtensions whitelists the extensions accepted for artist images.
var allowedImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// UploadArtistResponse is the response body for POST /api/data/uploadArtist.
// It keeps the success/error shape of the original client contract and adds
// error_code so callers can distinguish failure causes.
// swagger:model UploadArtistResponse
type UploadArtistResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
	ArtistID  string `json:"artist_id,omitempty"`
	Image     string `json:"image,omitempty"`
	Linked    bool   `json:"linked,omitempty"`
	Warning   string `json:"warning,omitempty"`
}

type ArtistController struct {
	Logger  *slog.Logger
	Service domain.ArtistService
}

func NewArtistController(logger *slog.Logger, svc domain.ArtistService) *ArtistController {
	return &ArtistController{
		Logger:  logger,
		Service: svc,
	}
}

// Upload godoc
// @Summary Register a new artist with an image
// @Description Validates the artist name for uniqueness, uploads the image to object storage under a generated key, and persists the artist. If artist_email matches an existing account, the artist is linked to it atomically; if it matches no account the upload still succeeds and warning is set to "linked_account_not_found".
// @Tags artists
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Artist image (jpg, jpeg, png, gif, webp; max 5MB)"
// @Param artist_name formData string true "Unique display name"
// @Param artist_full_name formData string false "Full name"
// @Param artist_nation formData string false "Nationality"
// @Param artist_description formData string false "Description"
// @Param artist_dob formData string false "Date of birth"
// @Param artist_email formData string false "Email of the account administering this artist"
// @Param artist_genre_name formData string false "Genre name"
// @Param artist_genre_id formData string false "Genre ID"
// @Success 200 {object} controllers.UploadArtistResponse
// @Router /api/data/uploadArtist [post]
func (c *ArtistController) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		helpers.WriteJSON(w, http.StatusBadRequest, UploadArtistResponse{
			Success:   false,
			Error:     "invalid multipart form",
			ErrorCode: helpers.ErrCodeBadRequest,
		})
		return
	}

	in := domain.UploadInput{
		Name:        r.FormValue("artist_name"),
		FullName:    r.FormValue("artist_full_name"),
		Nationality: r.FormValue("artist_nation"),
		Description: r.FormValue("artist_description"),
		DateOfBirth: r.FormValue("artist_dob"),
		Email:       r.FormValue("artist_email"),
		Genre: domain.Genre{
			ID:   r.FormValue("artist_genre_id"),
			Name: r.FormValue("artist_genre_name"),
		},
	}

	file, header, err := r.FormFile(fileField)
	if err == nil {
		defer file.Close()
		ext := strings.ToLower(filepath.Ext(header.Filename))
		if _, ok := allowedImageExtensions[ext]; !ok {
			helpers.WriteJSON(w, http.StatusBadRequest, UploadArtistResponse{
				Success:   false,
				Error:     "file extension " + ext + " is not allowed",
				ErrorCode: helpers.ErrCodeBadRequest,
			})
			return
		}
		body, err := io.ReadAll(file)
		if err != nil {
			helpers.WriteJSON(w, http.StatusBadRequest, UploadArtistResponse{
				Success:   false,
				Error:     "could not read file",
				ErrorCode: helpers.ErrCodeBadRequest,
			})
			return
		}
		in.Filename = header.Filename
		in.File = body
		in.ContentType = header.Header.Get("Content-Type")
	}
	// A missing file is reported by the service as a distinct failure kind,
	// not conflated with storage or persistence errors.

	result, err := c.Service.Upload(r.Context(), in)
	if err != nil {
		c.writeUploadError(w, r, err)
		return
	}

	resp := UploadArtistResponse{
		Success:  true,
		ArtistID: result.Artist.ID,
		Image:    result.Artist.ImageKey,
		Linked:   result.Linked,
	}
	if result.LinkSkipped {
		resp.Warning = helpers.WarnCodeLinkedUserNotFound
	}
	helpers.WriteJSON(w, http.StatusOK, resp)
}

func (c *ArtistController) writeUploadError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var code string
	switch {
	case errors.Is(err, domain.ErrDuplicateArtistName):
		status, code = http.StatusConflict, helpers.ErrCodeDuplicateName
	case errors.Is(err, domain.ErrMissingFile):
		status, code = http.StatusBadRequest, helpers.ErrCodeMissingFile
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = http.StatusBadRequest, helpers.ErrCodeBadRequest
	case errors.Is(err, domain.ErrStorageFailure):
		status, code = http.StatusBadGateway, helpers.ErrCodeStorageFailure
		c.Logger.ErrorContext(r.Context(), "artist image upload failed", "err", err)
	default:
		status, code = http.StatusInternalServerError, helpers.ErrCodePersistenceFailure
		c.Logger.ErrorContext(r.Context(), "artist registration failed", "err", err)
	}
	helpers.WriteJSON(w, status, UploadArtistResponse{
		Success:   false,
		Error:     errorMessageFor(err),
		ErrorCode: code,
	})
}

// errorMessageFor keeps internal detail out of client-facing messages while
// preserving the exact legacy duplicate-name wording.
func errorMessageFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicateArtistName):
		return domain.ErrDuplicateArtistName.Error()
	case errors.Is(err, domain.ErrMissingFile):
		return domain.ErrMissingFile.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		return err.Error()
	case errors.Is(err, domain.ErrStorageFailure):
		return "image upload failed"
	default:
		return "could not save artist"
	}
}

// List godoc
// @Summary List all artists
// @Tags artists
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the artist list"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/data/artistData [get]
func (c *ArtistController) List(w http.ResponseWriter, r *http.Request) {
	artists, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not list artists")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, artists)
}

// GetByID godoc
// @Summary Get one artist by ID
// @Tags artists
// @Produce json
// @Param artistID path string true "Artist ID"
// @Success 200 {object} helpers.APIResponse "data contains the artist"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/data/artistData/{artistID} [get]
func (c *ArtistController) GetByID(w http.ResponseWriter, r *http.Request) {
	artistID := r.PathValue("artistID")
	if artistID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing artistID")
		return
	}
	artist, err := c.Service.GetByID(r.Context(), artistID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "artist not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not get artist")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, artist)
}
