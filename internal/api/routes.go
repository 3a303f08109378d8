package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(userMiddleware)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/words", s.handleListWords)
		r.Post("/words", s.handleAddWord)
		r.Get("/words/categories", s.handleCategories)
		r.Get("/words/{id}", s.handleGetWord)
		r.Delete("/words/{id}", s.handleDeleteWord)
		r.Post("/words/{id}/review", s.handleReviewWord)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/flashcards", s.handleStartFlashcards)
			r.Post("/flashcards/{id}/answer", s.handleAnswerFlashcard)
			r.Post("/battle", s.handleStartBattle)
			r.Post("/battle/{id}/answer", s.handleAnswerBattle)
			r.Post("/match", s.handleStartMatch)
			r.Post("/match/{id}/flip", s.handleFlipCard)
			r.Post("/match/{id}/resolve", s.handleResolveMismatch)
			r.Post("/match/{id}/tick", s.handleTickMatch)
			r.Post("/builder", s.handleStartBuilder)
			r.Post("/builder/{id}/select", s.handleSelectLetter)
			r.Post("/builder/{id}/undo", s.handleUndoLetter)
			r.Post("/builder/{id}/check", s.handleCheckBuilder)
			r.Delete("/{id}", s.handleAbandonSession)
		})

		r.Get("/progress", s.handleGetProgress)
		r.Post("/progress/activity", s.handleRecordActivity)
		r.Get("/xp", s.handleXPInfo)

		r.Post("/translate", s.handleTranslate)
		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handleSaveSettings)
		r.Post("/speech/speak", s.handleSpeak)
	})

	return r
}
