package wire

import (
	"filmorate/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireDirector(r chi.Router, directorHandler *adaptor.DirectorHandler) {
	r.Route("/directors", func(r chi.Router) {
		r.Get("/", directorHandler.GetDirectors)
		r.Post("/", directorHandler.CreateDirector)
		r.Put("/", directorHandler.UpdateDirector)
		r.Get("/{id}", directorHandler.GetDirectorByID)
		r.Delete("/{id}", directorHandler.DeleteDirector)
	})
}
