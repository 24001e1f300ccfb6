package wire

import (
	"filmorate/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFilm(r chi.Router, filmHandler *adaptor.FilmHandler) {
	r.Route("/films", func(r chi.Router) {
		// ==================== LISTINGS ====================
		r.Get("/", filmHandler.GetFilms)
		r.Get("/popular", filmHandler.GetPopular)                  // ?count=&genreId=&year=
		r.Get("/search", filmHandler.Search)                       // ?query=&by=title,director
		r.Get("/common", filmHandler.GetCommon)                    // ?userId=&friendId=
		r.Get("/director/{directorId}", filmHandler.GetByDirector) // ?sortBy=year|likes

		// ==================== CRUD ====================
		r.Post("/", filmHandler.CreateFilm)
		r.Put("/", filmHandler.UpdateFilm)
		r.Get("/{id}", filmHandler.GetFilmByID)
		r.Delete("/{id}", filmHandler.DeleteFilm)

		// ==================== LIKES ====================
		r.Put("/{id}/like/{userId}", filmHandler.AddLike)
		r.Delete("/{id}/like/{userId}", filmHandler.RemoveLike)
	})
}
