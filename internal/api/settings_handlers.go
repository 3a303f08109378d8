package api

import (
	"net/http"

	"github.com/lingualearn/linguaflash/internal/models"
)

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.Settings.GetSettings(r.Context(), UserID(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, settings)
}

func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.UserSettings
	if err := decodeJSON(r, &settings); err != nil {
		handleError(w, r, err)
		return
	}
	// Ownership comes from the request, never the payload.
	settings.UserID = UserID(r.Context())

	saved, err := s.Settings.SaveSettings(r.Context(), settings)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, saved)
}
