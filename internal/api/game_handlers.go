package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lingualearn/linguaflash/internal/session"
)

func (s *Server) handleStartFlashcards(w http.ResponseWriter, r *http.Request) {
	view, err := s.Games.StartFlashcards(r.Context(), UserID(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, view)
}

func (s *Server) handleAnswerFlashcard(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Correct bool `json:"correct"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handleError(w, r, err)
		return
	}

	view, err := s.Games.AnswerFlashcard(r.Context(), UserID(r.Context()), chi.URLParam(r, "id"), body.Correct)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleStartBattle(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Level int `json:"level"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handleError(w, r, err)
		return
	}

	view, err := s.Games.StartBattle(r.Context(), UserID(r.Context()), body.Level)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, view)
}

func (s *Server) handleAnswerBattle(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Option string `json:"option"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handleError(w, r, err)
		return
	}

	view, err := s.Games.AnswerBattle(r.Context(), UserID(r.Context()), chi.URLParam(r, "id"), body.Option)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleStartMatch(w http.ResponseWriter, r *http.Request) {
	view, err := s.Games.StartMatch(r.Context(), UserID(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}
	// The client owns the mismatch flip-back timer.
	respondJSON(w, r, http.StatusCreated, map[string]any{
		"session":           view,
		"mismatch_delay_ms": session.MismatchFlipDelay.Milliseconds(),
	})
}

func (s *Server) handleFlipCard(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CardID string `json:"card_id"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handleError(w, r, err)
		return
	}

	view, err := s.Games.FlipCard(r.Context(), UserID(r.Context()), chi.URLParam(r, "id"), body.CardID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleResolveMismatch(w http.ResponseWriter, r *http.Request) {
	view, err := s.Games.ResolveMismatch(r.Context(), UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleTickMatch(w http.ResponseWriter, r *http.Request) {
	view, err := s.Games.TickMatch(r.Context(), UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleStartBuilder(w http.ResponseWriter, r *http.Request) {
	view, err := s.Games.StartBuilder(r.Context(), UserID(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, view)
}

func (s *Server) handleSelectLetter(w http.ResponseWriter, r *http.Request) {
	var body struct {
		LetterID string `json:"letter_id"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handleError(w, r, err)
		return
	}

	view, err := s.Games.SelectLetter(r.Context(), UserID(r.Context()), chi.URLParam(r, "id"), body.LetterID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleUndoLetter(w http.ResponseWriter, r *http.Request) {
	var body struct {
		LetterID string `json:"letter_id"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handleError(w, r, err)
		return
	}

	view, err := s.Games.UndoLetter(r.Context(), UserID(r.Context()), chi.URLParam(r, "id"), body.LetterID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleCheckBuilder(w http.ResponseWriter, r *http.Request) {
	view, err := s.Games.CheckBuilder(r.Context(), UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleAbandonSession(w http.ResponseWriter, r *http.Request) {
	if err := s.Games.Abandon(r.Context(), UserID(r.Context()), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
