package wire

import (
	"filmorate/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// genres and MPA ratings are read-only
func wireLookup(r chi.Router, lookupHandler *adaptor.LookupHandler) {
	r.Get("/genres", lookupHandler.GetGenres)
	r.Get("/genres/{id}", lookupHandler.GetGenreByID)

	r.Get("/mpa", lookupHandler.GetRatings)
	r.Get("/mpa/{id}", lookupHandler.GetRatingByID)
}
