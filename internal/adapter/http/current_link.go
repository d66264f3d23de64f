package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"inscription-api/internal/core/port"
)

type currentLinkResponse struct {
	DestinationURL string `json:"destinationUrl"`
	LinkID         int64  `json:"linkId"`
}

type fallbackResponse struct {
	DestinationURL string `json:"destinationUrl"`
}

// handleCurrentLink serves the next link of the rotation. When no link is
// eligible it answers 404 with the fallback destination; storage failures
// answer 500. Attribution is scheduled only after the response is written
// and cannot change it.
func (h *Handler) handleCurrentLink(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Rotation.ResolveNextLink(r.Context())
	if errors.Is(err, port.ErrNoEligibleLink) {
		writeJSON(w, http.StatusNotFound, fallbackResponse{DestinationURL: h.fallbackURL})
		return
	}
	if err != nil {
		h.logger.Error("resolve current link error",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err),
		)
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "failed to get current link"})
		return
	}

	writeJSON(w, http.StatusOK, currentLinkResponse{DestinationURL: d.DestinationURL, LinkID: d.LinkID})
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
	h.svc.Attribution.Enqueue(d.LinkID)
}
