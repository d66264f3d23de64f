package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"inscription-api/internal/core/domain"
	"inscription-api/internal/core/port"
)

type linkResponse struct {
	ID                  int64      `json:"id"`
	Kind                string     `json:"kind"`
	DestinationURL      string     `json:"destinationUrl"`
	ShortCode           *string    `json:"shortCode,omitempty"`
	AmbassadorFirstName *string    `json:"ambassadorFirstName,omitempty"`
	AmbassadorLastName  *string    `json:"ambassadorLastName,omitempty"`
	AmbassadorEmail     *string    `json:"ambassadorEmail,omitempty"`
	Active              bool       `json:"active"`
	Deleted             bool       `json:"deleted"`
	Eligible            bool       `json:"eligible"`
	ExpiresAt           *time.Time `json:"expiresAt,omitempty"`
	ClickCount          int64      `json:"clickCount"`
	CreatedAt           time.Time  `json:"createdAt"`
}

func toLinkResponse(l domain.MarketingLink, now time.Time) linkResponse {
	return linkResponse{
		ID:                  l.ID,
		Kind:                string(l.Kind),
		DestinationURL:      l.DestinationURL,
		ShortCode:           l.ShortCode,
		AmbassadorFirstName: l.Ambassador.FirstName,
		AmbassadorLastName:  l.Ambassador.LastName,
		AmbassadorEmail:     l.Ambassador.Email,
		Active:              l.Active,
		Deleted:             l.Deleted,
		Eligible:            l.Eligible(now),
		ExpiresAt:           l.ExpiresAt,
		ClickCount:          l.ClickCount,
		CreatedAt:           l.CreatedAt,
	}
}

type createLinkRequest struct {
	Kind                string     `json:"kind"`
	DestinationURL      string     `json:"destinationUrl"`
	ShortCode           string     `json:"shortCode"`
	AmbassadorFirstName *string    `json:"ambassadorFirstName"`
	AmbassadorLastName  *string    `json:"ambassadorLastName"`
	AmbassadorEmail     *string    `json:"ambassadorEmail"`
	ExpiresAt           *time.Time `json:"expiresAt"`
}

// handleListLinks returns every marketing link, newest first.
func (h *Handler) handleListLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.svc.Links.ListLinks(r.Context())
	if err != nil {
		h.writeError(w, r, err, "failed to fetch links")
		return
	}
	now := time.Now()
	resp := make([]linkResponse, 0, len(links))
	for _, l := range links {
		resp = append(resp, toLinkResponse(l, now))
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleCreateLink creates a link from a JSON body. Validation errors give
// 400 and a taken short code 409.
func (h *Handler) handleCreateLink(w http.ResponseWriter, r *http.Request) {
	var body createLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid JSON"})
		return
	}
	link, err := h.svc.Links.CreateLink(r.Context(), port.CreateLinkReq{
		Kind:           domain.LinkKind(body.Kind),
		DestinationURL: body.DestinationURL,
		ShortCode:      body.ShortCode,
		Ambassador: domain.Ambassador{
			FirstName: body.AmbassadorFirstName,
			LastName:  body.AmbassadorLastName,
			Email:     body.AmbassadorEmail,
		},
		ExpiresAt: body.ExpiresAt,
	})
	if err != nil {
		h.writeError(w, r, err, "failed to create link")
		return
	}
	h.logger.Info("link created",
		slog.Int64("link_id", link.ID),
		slog.String("kind", string(link.Kind)),
		slog.String("admin", AdminSubject(r.Context())),
	)
	writeJSON(w, http.StatusCreated, toLinkResponse(*link, time.Now()))
}

func (h *Handler) handleSetLinkActive(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := linkID(w, r)
		if !ok {
			return
		}
		if err := h.svc.Links.SetLinkActive(r.Context(), id, active); err != nil {
			h.writeError(w, r, err, "failed to update link")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) handleDeleteLink(w http.ResponseWriter, r *http.Request) {
	id, ok := linkID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Links.DeleteLink(r.Context(), id); err != nil {
		h.writeError(w, r, err, "failed to delete link")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRestoreLink(w http.ResponseWriter, r *http.Request) {
	id, ok := linkID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Links.RestoreLink(r.Context(), id); err != nil {
		h.writeError(w, r, err, "failed to restore link")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// linkID parses the {id} path parameter and answers 400 when it is not a
// positive integer.
func linkID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid link id"})
		return 0, false
	}
	return id, true
}
