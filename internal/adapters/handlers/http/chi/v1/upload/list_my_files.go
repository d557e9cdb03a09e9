package upload

import (
	"file-processor/internal/adapters/handlers/http/chi/httpauth"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// V1FileListItem is one entry of the my-files listing
type V1FileListItem struct {
	FileID    uuid.UUID `json:"fileId"`
	CreatedAt time.Time `json:"created_at"`
}

// ListMyFilesV1 is the function that lists the caller's uploads
func (h *HandlerV1) ListMyFilesV1(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpauth.UserID(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, detailResponse{Detail: "Authentication credentials were not provided."})
		return
	}

	records, err := h.uploadService.ListOwnerFiles(r.Context(), ownerID)
	if err != nil {
		h.logger.Error("error listing uploads", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	resp := make([]V1FileListItem, 0, len(records))
	for _, rec := range records {
		resp = append(resp, V1FileListItem{FileID: rec.ID, CreatedAt: rec.CreatedAt})
	}
	h.writeJSON(w, http.StatusOK, resp)
}
