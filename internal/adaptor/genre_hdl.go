package adaptor

import (
	"net/http"

	"filmorate/internal/usecase"
	"filmorate/pkg/utils"

	"go.uber.org/zap"
)

// LookupHandler serves the read-only genre and MPA sets
type LookupHandler struct {
	genres usecase.GenreService
	mpa    usecase.MPAService
	log    *zap.Logger
}

func NewLookupHandler(genres usecase.GenreService, mpa usecase.MPAService, log *zap.Logger) *LookupHandler {
	return &LookupHandler{
		genres: genres,
		mpa:    mpa,
		log:    log.With(zap.String("handler", "lookup")),
	}
}

// GetGenres handles GET /genres
func (h *LookupHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.genres.GetGenres(r.Context())
	if err != nil {
		handleServiceError(h.log, w, r, err, "get genres")
		return
	}

	utils.ResponseSuccess(w, "Genres retrieved successfully", genres)
}

// GetGenreByID handles GET /genres/{id}
func (h *LookupHandler) GetGenreByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	genre, err := h.genres.GetGenreByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get genre by ID")
		return
	}

	utils.ResponseSuccess(w, "Genre retrieved successfully", genre)
}

// GetRatings handles GET /mpa
func (h *LookupHandler) GetRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.mpa.GetRatings(r.Context())
	if err != nil {
		handleServiceError(h.log, w, r, err, "get mpa ratings")
		return
	}

	utils.ResponseSuccess(w, "MPA ratings retrieved successfully", ratings)
}

// GetRatingByID handles GET /mpa/{id}
func (h *LookupHandler) GetRatingByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	rating, err := h.mpa.GetRatingByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get mpa rating by ID")
		return
	}

	utils.ResponseSuccess(w, "MPA rating retrieved successfully", rating)
}
