package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lingualearn/linguaflash/internal/logger"
	"github.com/lingualearn/linguaflash/internal/models"
	"github.com/lingualearn/linguaflash/internal/services"
)

func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	q := r.URL.Query()

	filter := models.WordFilter{
		Category: q.Get("category"),
		Type:     q.Get("type"),
		Search:   q.Get("search"),
	}
	if v := q.Get("mastered"); v != "" {
		mastered, err := strconv.ParseBool(v)
		if err != nil {
			handleError(w, r, errBadParam("mastered", v))
			return
		}
		filter.Mastered = &mastered
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			handleError(w, r, errBadParam("limit", v))
			return
		}
		filter.Limit = limit
	}
	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			handleError(w, r, errBadParam("offset", v))
			return
		}
		filter.Offset = offset
	}

	words, err := s.Words.ListWords(r.Context(), UserID(r.Context()), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Debug("listed %d words", len(words))
	respondJSON(w, r, http.StatusOK, map[string]any{"words": words})
}

func (s *Server) handleAddWord(w http.ResponseWriter, r *http.Request) {
	var input services.AddWordInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	word, err := s.Words.AddWord(r.Context(), UserID(r.Context()), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, word)
}

func (s *Server) handleGetWord(w http.ResponseWriter, r *http.Request) {
	word, err := s.Words.GetWord(r.Context(), UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, word)
}

func (s *Server) handleDeleteWord(w http.ResponseWriter, r *http.Request) {
	if err := s.Words.DeleteWord(r.Context(), UserID(r.Context()), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReviewWord(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Correct bool `json:"correct"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handleError(w, r, err)
		return
	}

	outcome, err := s.Reviews.ReviewWord(r.Context(), UserID(r.Context()), chi.URLParam(r, "id"), body.Correct)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, outcome)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.Words.Categories(r.Context(), UserID(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"categories": categories})
}
