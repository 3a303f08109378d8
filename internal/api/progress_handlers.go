package api

import (
	"net/http"
	"time"

	"github.com/lingualearn/linguaflash/internal/progress"
)

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	p, err := s.Progress.GetProgress(r.Context(), UserID(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, p)
}

func (s *Server) handleRecordActivity(w http.ResponseWriter, r *http.Request) {
	// The body is optional; clients may pin the day for end-of-day races.
	var body struct {
		Day string `json:"day"`
	}
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &body); err != nil {
			handleError(w, r, err)
			return
		}
	}
	day := body.Day
	if day == "" {
		day = progress.Today(time.Now())
	} else if _, err := time.Parse(progress.DateLayout, day); err != nil {
		handleError(w, r, errBadParam("day", body.Day))
		return
	}

	p, changed, err := s.Progress.RecordActivity(r.Context(), UserID(r.Context()), day)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{
		"progress": p,
		"changed":  changed,
	})
}

func (s *Server) handleXPInfo(w http.ResponseWriter, r *http.Request) {
	info, err := s.Progress.XPInfo(r.Context(), UserID(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, info)
}
