package upload

import (
	"errors"
	"file-processor/internal/adapters/handlers/http/chi/httpauth"
	"file-processor/internal/core/domain"
	"net/http"

	"github.com/google/uuid"
)

const (
	msgNoFile      = "No file was submitted."
	msgEmptyFile   = "The submitted file is empty."
	msgInvalidType = "Only CSV files are allowed."
	msgTooBig      = "File size must not exceed 10MB."
)

// V1UploadFileResponse is the response to an accepted upload
type V1UploadFileResponse struct {
	FileID uuid.UUID           `json:"fileId"`
	Status domain.UploadStatus `json:"status"`
	File   string              `json:"file"`
}

// V1FieldErrors maps a form field to its validation messages
type V1FieldErrors map[string][]string

// UploadFileV1 is the function that handles the csv upload
func (h *HandlerV1) UploadFileV1(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpauth.UserID(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, detailResponse{Detail: "Authentication credentials were not provided."})
		return
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeJSON(w, http.StatusBadRequest, V1FieldErrors{"file": {msgTooBig}})
			return
		}
		h.writeJSON(w, http.StatusBadRequest, V1FieldErrors{"file": {msgNoFile}})
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, V1FieldErrors{"file": {msgNoFile}})
		return
	}
	defer file.Close()

	record, err := h.uploadService.CreateUpload(r.Context(), ownerID, header.Filename, header.Size, file)
	switch {
	case errors.Is(err, domain.ErrInvalidFileType):
		h.writeJSON(w, http.StatusBadRequest, V1FieldErrors{"file": {msgInvalidType}})
		return
	case errors.Is(err, domain.ErrFileSizeTooBig):
		h.writeJSON(w, http.StatusBadRequest, V1FieldErrors{"file": {msgTooBig}})
		return
	case errors.Is(err, domain.ErrEmptyFile):
		h.writeJSON(w, http.StatusBadRequest, V1FieldErrors{"file": {msgEmptyFile}})
		return
	case errors.Is(err, domain.ErrEnqueueFailed):
		h.logger.Error("upload could not be scheduled", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	case err != nil:
		h.logger.Error("error creating upload", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		h.writeJSON(w, http.StatusCreated, V1UploadFileResponse{
			FileID: record.ID,
			Status: record.Status,
			File:   record.FileRef,
		})
		return
	}
}
