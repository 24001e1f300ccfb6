package request

// IDRef references an existing genre, MPA rating or director by id
type IDRef struct {
	ID int64 `json:"id" validate:"gt=0"`
}

type FilmRequest struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" validate:"required,notblank,max=255"`
	Description string  `json:"description" validate:"max=200"`
	ReleaseDate string  `json:"releaseDate" validate:"required,datetime=2006-01-02"`
	Duration    int     `json:"duration" validate:"gt=0"`
	MPA         *IDRef  `json:"mpa" validate:"required"`
	Genres      []IDRef `json:"genres,omitempty" validate:"omitempty,dive"`
	Directors   []IDRef `json:"directors,omitempty" validate:"omitempty,dive"`
}

// PopularRequest holds the query of GET /films/popular
type PopularRequest struct {
	Count   int
	GenreID *int64
	Year    *int
}
