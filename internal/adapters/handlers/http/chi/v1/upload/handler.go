package upload

import (
	"encoding/json"
	"file-processor/internal/core/port"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// multipartMemory is the part of a multipart body kept in memory, the rest spills to disk
const multipartMemory = 1 << 20

// HandlerV1 is the handler for upload routes
type HandlerV1 struct {
	uploadService port.UploadService
	logger        *slog.Logger
}

// NewUploadHandlerV1 creates HandlerV1
func NewUploadHandlerV1(service port.UploadService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		uploadService: service,
		logger:        logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/upload/", h.UploadFileV1)
	router.Get("/status/{fileID}/", h.GetStatusV1)
	router.Get("/my-files/", h.ListMyFilesV1)

	return router
}

type detailResponse struct {
	Detail string `json:"detail"`
}

func (h *HandlerV1) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
