package response

import (
	"filmorate/internal/data/entity"
)

const dateLayout = "2006-01-02"

type FilmResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	ReleaseDate string             `json:"releaseDate"`
	Duration    int                `json:"duration"`
	MPA         MPAResponse        `json:"mpa"`
	Genres      []GenreResponse    `json:"genres"`
	Directors   []DirectorResponse `json:"directors"`
	Likes       int                `json:"likes"`
}

// Helper converters
func FilmToResponse(film *entity.Film) FilmResponse {
	genres := make([]GenreResponse, len(film.Genres))
	for i, genre := range film.Genres {
		genres[i] = GenreToResponse(genre)
	}

	directors := make([]DirectorResponse, len(film.Directors))
	for i, director := range film.Directors {
		directors[i] = DirectorToResponse(director)
	}

	return FilmResponse{
		ID:          film.ID,
		Name:        film.Name,
		Description: film.Description,
		ReleaseDate: film.ReleaseDate.Format(dateLayout),
		Duration:    film.Duration,
		MPA:         MPAToResponse(film.MPA),
		Genres:      genres,
		Directors:   directors,
		Likes:       film.Likes,
	}
}

func FilmsToResponse(films []*entity.Film) []FilmResponse {
	result := make([]FilmResponse, len(films))
	for i, film := range films {
		result[i] = FilmToResponse(film)
	}
	return result
}
