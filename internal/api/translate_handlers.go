package api

import (
	"net/http"

	"github.com/lingualearn/linguaflash/internal/errors"
	"github.com/lingualearn/linguaflash/internal/logger"
)

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
		From string `json:"from"`
		To   string `json:"to"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.Translations.Translate(r.Context(), UserID(r.Context()), body.Text, body.From, body.To)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleSpeak(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
		Lang string `json:"lang"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handleError(w, r, err)
		return
	}
	if body.Text == "" {
		handleError(w, r, errors.NewValidationError("text", "must not be empty"))
		return
	}

	if err := s.Speaker.Speak(r.Context(), body.Text, body.Lang); err != nil {
		handleError(w, r, errors.NewUpstreamError("speech", err))
		return
	}
	logger.FromContext(r.Context()).Debug("speech requested: lang=%s", body.Lang)
	w.WriteHeader(http.StatusAccepted)
}
