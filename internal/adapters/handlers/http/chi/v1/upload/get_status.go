package upload

import (
	"errors"
	"file-processor/internal/adapters/handlers/http/chi/httpauth"
	"file-processor/internal/core/domain"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1GetStatusResponse is the response to get status
type V1GetStatusResponse struct {
	FileID    uuid.UUID           `json:"fileId"`
	Status    domain.UploadStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	File      string              `json:"file"`
}

// GetStatusV1 is the function that handles GetStatus
func (h *HandlerV1) GetStatusV1(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpauth.UserID(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, detailResponse{Detail: "Authentication credentials were not provided."})
		return
	}

	fileID, parseErr := uuid.Parse(chi.URLParam(r, "fileID"))
	if parseErr != nil {
		h.writeJSON(w, http.StatusBadRequest, detailResponse{Detail: "Invalid file id."})
		return
	}

	record, err := h.uploadService.GetStatus(r.Context(), fileID, ownerID)
	switch {
	case errors.Is(err, domain.ErrUploadNotFound):
		h.writeJSON(w, http.StatusNotFound, detailResponse{Detail: "File not found."})
		return
	case err != nil:
		h.logger.Error("error getting upload status", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		h.writeJSON(w, http.StatusOK, V1GetStatusResponse{
			FileID:    record.ID,
			Status:    record.Status,
			CreatedAt: record.CreatedAt,
			File:      record.FileRef,
		})
		return
	}
}
