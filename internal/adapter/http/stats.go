package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"inscription-api/internal/core/port"
)

type statsResponse struct {
	From   time.Time        `json:"from"`
	To     time.Time        `json:"to"`
	Counts map[string]int64 `json:"counts"`
	Total  int64            `json:"total"`
}

// handleStatsOverview returns event counts per type over a period. It
// accepts optional `from`, `to` (RFC3339 timestamps) and `link_id` query
// parameters. If no period is provided, it defaults to the last 24 hours.
// Invalid parameters result in HTTP 400. Internal errors produce HTTP 500.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     port.StatsReq
		err     error
	)

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid 'from' timestamp"})
			return
		}
	}

	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid 'to' timestamp"})
			return
		}
	}

	if lid := q.Get("link_id"); lid != "" {
		id, err := strconv.ParseInt(lid, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid link_id"})
			return
		}
		req.LinkID = &id
	}

	stats, err := h.svc.Clicks.GetStats(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "failed to fetch stats")
		return
	}

	counts := make(map[string]int64, len(stats.Counts))
	for t, n := range stats.Counts {
		counts[string(t)] = n
	}
	writeJSON(w, http.StatusOK, statsResponse{From: stats.From, To: stats.To, Counts: counts, Total: stats.Total})
}
