package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avelorn/chronline/internal/contract"
)

func (a *api) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Error("encoding response", "error", err)
	}
}

// writeError maps a service error to its HTTP status. Anything that is not a
// typed contract error is reported as an internal fault without detail.
func (a *api) writeError(w http.ResponseWriter, err error) {
	var cErr *contract.Error
	if !errors.As(err, &cErr) {
		a.logger.Error("unhandled service error", "error", err)
		cErr = &contract.Error{Code: contract.ErrInternalError, Message: "internal error"}
	}
	a.writeJSON(w, statusFor(cErr.Code), cErr)
}

func statusFor(code contract.ErrorCode) int {
	switch code {
	case contract.ErrValidationFailed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
