package handler

import (
	"encoding/json"
	"net/http"
)

// HandleResolveLocation handles GET /api/locations/resolve?text=...
// It backs the dispatch map: clients center on the returned
// coordinates. An unmatched location is a normal outcome and comes back
// as 404, reported only to the caller.
func (h *Handler) HandleResolveLocation(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if text == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "text is required"})
		return
	}

	coords, ok := h.Gazetteer.Resolve(text)
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "location not found"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(coords)
}
