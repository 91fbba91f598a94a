package api

import (
	"encoding/json"
	"net/http"

	"github.com/avelorn/chronline/internal/contract"
)

// handleRoot answers the health check with a short banner and endpoint map.
// GET /
func (a *api) handleRoot(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]any{
		"message": "chronline API",
		"status":  "running",
		"endpoints": map[string]string{
			"POST /api/entries":   "Submit screen time entries",
			"GET /api/analytics":  "Get analytics for stored entries",
			"DELETE /api/entries": "Clear stored entries",
		},
	})
}

// handleSubmit stores a batch of entries and returns the refreshed report.
// POST /api/entries
func (a *api) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req contract.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, &contract.Error{Code: contract.ErrValidationFailed, Message: "invalid request body"})
		return
	}

	result, err := a.service.Submit(r.Context(), req.Entries)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, result)
}

// handleAnalytics returns the report over all stored entries.
// GET /api/analytics
func (a *api) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	report, err := a.service.Analytics(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, report)
}

// handleClear wipes the store.
// DELETE /api/entries
func (a *api) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := a.service.Clear(r.Context()); err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]string{"message": "Cleared all entries"})
}
