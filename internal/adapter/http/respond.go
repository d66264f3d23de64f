package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"inscription-api/internal/core/port"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// headers are already sent
		slog.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps use case errors onto status codes. Validation, missing
// and conflicting records echo the error; anything else is logged and
// answered with the generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, message string) {
	switch {
	case errors.Is(err, port.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
	case errors.Is(err, port.ErrNotFound):
		writeJSON(w, http.StatusNotFound, messageResponse{Message: err.Error()})
	case errors.Is(err, port.ErrConflict):
		writeJSON(w, http.StatusConflict, messageResponse{Message: err.Error()})
	default:
		h.logger.Error(message,
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err),
		)
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: message})
	}
}

func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			h.logger.Debug("http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}
