package auditlog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/chris/risk-pool-lending/pkg/audit"
	"github.com/chris/risk-pool-lending/pkg/events"
)

// defaultLimit caps an event listing when the client does not specify one.
const defaultLimit int32 = 20

// AuditHandler holds the dependencies for event-stream handlers.
type AuditHandler struct {
	Reader audit.Reader
	Hub    *events.Hub
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(reader audit.Reader, hub *events.Hub) *AuditHandler {
	return &AuditHandler{Reader: reader, Hub: hub}
}

// ListEvents handles the logic for retrieving the most recent indexed
// events, newest first.
func (h *AuditHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	if h.Reader == nil {
		http.Error(w, "Event index not configured", http.StatusNotImplemented)
		return
	}

	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = int32(parsed)
	}

	evs, err := h.Reader.ListEvents(r.Context(), limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve events: %v", err), http.StatusInternalServerError)
		return
	}

	// Sort events by emission time in descending order.
	sort.Slice(evs, func(i, j int) bool {
		return evs[i].EmittedAt.After(evs[j].EmittedAt)
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(evs); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// StreamEvents upgrades the request to a WebSocket connection streaming
// ledger events as they are emitted.
func (h *AuditHandler) StreamEvents(w http.ResponseWriter, r *http.Request) {
	if h.Hub == nil {
		http.Error(w, "Event stream not configured", http.StatusNotImplemented)
		return
	}
	h.Hub.ServeWS(w, r)
}
