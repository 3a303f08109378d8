package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lingualearn/linguaflash/internal/errors"
	"github.com/lingualearn/linguaflash/internal/logger"
)

func errBadParam(name, value string) error {
	return errors.NewValidationError(name, fmt.Sprintf("invalid value %q", value))
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

// decodeJSON reads the request body into dst. An empty body is an error; every
// mutating endpoint here expects a payload.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.NewBadRequestError("invalid JSON body: " + err.Error())
	}
	return nil
}
