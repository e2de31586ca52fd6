package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"concertify/internal/delivery/http/helpers"
	"concertify/internal/domain"
)

type mockArtistService struct {
	result    *domain.UploadResult
	artist    *domain.Artist
	artists   []*domain.Artist
	err       error
	lastInput domain.UploadInput
}

func (m *mockArtistService) Upload(ctx context.Context, in domain.UploadInput) (*domain.UploadResult, error) {
	m.lastInput = in
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockArtistService) GetByID(ctx context.Context, id string) (*domain.Artist, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.artist, nil
}

func (m *mockArtistService) List(ctx context.Context) ([]*domain.Artist, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.artists, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// uploadRequest builds a multipart POST with the given form fields and an
// optional file part.
func uploadRequest(t *testing.T, fields map[string]string, filename string, file []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("failed to write field %s: %v", k, err)
		}
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("failed to create file part: %v", err)
		}
		if _, err := fw.Write(file); err != nil {
			t.Fatalf("failed to write file part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/data/uploadArtist", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeUploadResponse(t *testing.T, w *httptest.ResponseRecorder) UploadArtistResponse {
	t.Helper()
	var resp UploadArtistResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return resp
}

func TestArtistController_Upload_Success(t *testing.T) {
	svc := &mockArtistService{
		result: &domain.UploadResult{
			Artist: &domain.Artist{
				ID:       "artist-1",
				Name:     "Daft Punk",
				ImageKey: "artist_images/key-1.jpg",
			},
		},
	}
	ctrl := NewArtistController(testLogger(), svc)

	req := uploadRequest(t, map[string]string{
		"artist_name":        "Daft Punk",
		"artist_full_name":   "Thomas Bangalter, Guy-Manuel de Homem-Christo",
		"artist_nation":      "France",
		"artist_description": "Electronic duo",
		"artist_email":       "band@example.com",
		"artist_genre_name":  "Electronic",
	}, "cover.jpg", []byte("image-bytes"))
	w := httptest.NewRecorder()

	ctrl.Upload(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	resp := decodeUploadResponse(t, w)
	if !resp.Success {
		t.Fatalf("expected success, got error %q", resp.Error)
	}
	if resp.ArtistID != "artist-1" {
		t.Fatalf("expected artist_id artist-1, got %q", resp.ArtistID)
	}
	if resp.Image != "artist_images/key-1.jpg" {
		t.Fatalf("expected image key, got %q", resp.Image)
	}
	if resp.Warning != "" {
		t.Fatalf("expected no warning, got %q", resp.Warning)
	}

	in := svc.lastInput
	if in.Name != "Daft Punk" || in.Nationality != "France" || in.Genre.Name != "Electronic" {
		t.Fatalf("form fields not mapped into upload input: %+v", in)
	}
	if in.Filename != "cover.jpg" || string(in.File) != "image-bytes" {
		t.Fatalf("file part not mapped into upload input: filename=%q len=%d", in.Filename, len(in.File))
	}
}

func TestArtistController_Upload_DuplicateName(t *testing.T) {
	svc := &mockArtistService{err: domain.ErrDuplicateArtistName}
	ctrl := NewArtistController(testLogger(), svc)

	req := uploadRequest(t, map[string]string{"artist_name": "Daft Punk"}, "cover.jpg", []byte("x"))
	w := httptest.NewRecorder()

	ctrl.Upload(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
	resp := decodeUploadResponse(t, w)
	if resp.Success {
		t.Fatal("expected failure response")
	}
	if resp.ErrorCode != helpers.ErrCodeDuplicateName {
		t.Fatalf("expected error_code %q, got %q", helpers.ErrCodeDuplicateName, resp.ErrorCode)
	}
	if resp.Error != "Artist name is already taken. Choose a different name." {
		t.Fatalf("unexpected duplicate message: %q", resp.Error)
	}
}

func TestArtistController_Upload_MissingFile(t *testing.T) {
	svc := &mockArtistService{err: domain.ErrMissingFile}
	ctrl := NewArtistController(testLogger(), svc)

	req := uploadRequest(t, map[string]string{"artist_name": "Daft Punk"}, "", nil)
	w := httptest.NewRecorder()

	ctrl.Upload(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	resp := decodeUploadResponse(t, w)
	if resp.ErrorCode != helpers.ErrCodeMissingFile {
		t.Fatalf("expected error_code %q, got %q", helpers.ErrCodeMissingFile, resp.ErrorCode)
	}
	if resp.ErrorCode == helpers.ErrCodeStorageFailure || resp.ErrorCode == helpers.ErrCodePersistenceFailure {
		t.Fatal("missing file must not be reported as a storage or persistence failure")
	}
}

func TestArtistController_Upload_StorageFailure(t *testing.T) {
	svc := &mockArtistService{err: domain.ErrStorageFailure}
	ctrl := NewArtistController(testLogger(), svc)

	req := uploadRequest(t, map[string]string{"artist_name": "Daft Punk"}, "cover.jpg", []byte("x"))
	w := httptest.NewRecorder()

	ctrl.Upload(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, w.Code)
	}
	resp := decodeUploadResponse(t, w)
	if resp.ErrorCode != helpers.ErrCodeStorageFailure {
		t.Fatalf("expected error_code %q, got %q", helpers.ErrCodeStorageFailure, resp.ErrorCode)
	}
}

func TestArtistController_Upload_LinkSkippedWarning(t *testing.T) {
	svc := &mockArtistService{
		result: &domain.UploadResult{
			Artist:      &domain.Artist{ID: "artist-1", ImageKey: "artist_images/key-1.jpg"},
			LinkSkipped: true,
		},
	}
	ctrl := NewArtistController(testLogger(), svc)

	req := uploadRequest(t, map[string]string{
		"artist_name":  "Daft Punk",
		"artist_email": "nobody@example.com",
	}, "cover.jpg", []byte("x"))
	w := httptest.NewRecorder()

	ctrl.Upload(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	resp := decodeUploadResponse(t, w)
	if !resp.Success {
		t.Fatalf("upload with unknown email must still succeed, got error %q", resp.Error)
	}
	if resp.Warning != helpers.WarnCodeLinkedUserNotFound {
		t.Fatalf("expected warning %q, got %q", helpers.WarnCodeLinkedUserNotFound, resp.Warning)
	}
}

func TestArtistController_Upload_RejectsDisallowedExtension(t *testing.T) {
	svc := &mockArtistService{}
	ctrl := NewArtistController(testLogger(), svc)

	req := uploadRequest(t, map[string]string{"artist_name": "Daft Punk"}, "payload.exe", []byte("x"))
	w := httptest.NewRecorder()

	ctrl.Upload(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if svc.lastInput.Name != "" {
		t.Fatal("service must not be called for a disallowed extension")
	}
}

func TestArtistController_GetByID_NotFound(t *testing.T) {
	svc := &mockArtistService{err: domain.ErrNotFound}
	ctrl := NewArtistController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/api/data/artistData/missing", nil)
	req.SetPathValue("artistID", "missing")
	w := httptest.NewRecorder()

	ctrl.GetByID(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != helpers.ErrCodeNotFound {
		t.Fatalf("expected error code %q, got %+v", helpers.ErrCodeNotFound, resp.Error)
	}
}

func TestArtistController_List(t *testing.T) {
	svc := &mockArtistService{
		artists: []*domain.Artist{
			{ID: "a1", Name: "Daft Punk"},
			{ID: "a2", Name: "Justice"},
		},
	}
	ctrl := NewArtistController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/api/data/artistData", nil)
	w := httptest.NewRecorder()

	ctrl.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("expected no error, got %v", resp.Error)
	}
}
