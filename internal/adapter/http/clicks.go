package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"inscription-api/internal/core/domain"
)

type recordClickRequest struct {
	ClickType string `json:"clickType"`
}

type historyItemResponse struct {
	ID                  uuid.UUID `json:"id"`
	Date                time.Time `json:"date"`
	ClickType           string    `json:"clickType"`
	LinkID              *int64    `json:"linkId,omitempty"`
	LinkURL             *string   `json:"linkUrl,omitempty"`
	LinkKind            *string   `json:"linkKind,omitempty"`
	AmbassadorFirstName *string   `json:"ambassadorFirstName,omitempty"`
	AmbassadorLastName  *string   `json:"ambassadorLastName,omitempty"`
	AmbassadorEmail     *string   `json:"ambassadorEmail,omitempty"`
}

// handleRecordClick stores a page-level click event. Unknown click types
// give 400.
func (h *Handler) handleRecordClick(w http.ResponseWriter, r *http.Request) {
	var body recordClickRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid JSON"})
		return
	}
	if body.ClickType == "" {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "clickType is required"})
		return
	}
	if err := h.svc.Clicks.RecordClick(r.Context(), domain.EventType(body.ClickType)); err != nil {
		h.writeError(w, r, err, "failed to record click")
		return
	}
	writeJSON(w, http.StatusCreated, messageResponse{Message: "click recorded"})
}

// handleClickHistory returns the latest events. The optional `limit` query
// parameter must be a positive integer.
func (h *Handler) handleClickHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid limit"})
			return
		}
		limit = n
	}
	items, err := h.svc.Clicks.ClickHistory(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err, "failed to fetch click history")
		return
	}
	resp := make([]historyItemResponse, 0, len(items))
	for _, it := range items {
		item := historyItemResponse{
			ID:                  it.ID,
			Date:                it.CreatedAt,
			ClickType:           string(it.Type),
			LinkID:              it.LinkID,
			LinkURL:             it.LinkURL,
			AmbassadorFirstName: it.Ambassador.FirstName,
			AmbassadorLastName:  it.Ambassador.LastName,
			AmbassadorEmail:     it.Ambassador.Email,
		}
		if it.LinkKind != nil {
			kind := string(*it.LinkKind)
			item.LinkKind = &kind
		}
		resp = append(resp, item)
	}
	writeJSON(w, http.StatusOK, resp)
}
