package entity

import (
	"time"
)

// CinemaBirthday is the earliest release date a film may carry.
var CinemaBirthday = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

type Film struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	ReleaseDate time.Time  `db:"release_date"`
	Duration    int        `db:"duration"`
	MPA         MPA        `db:"-"`
	Genres      []Genre    `db:"-"`
	Directors   []Director `db:"-"`
	Likes       int        `db:"-"`
}

// FilmSort selects the order of a director's films.
type FilmSort string

const (
	FilmSortYear  FilmSort = "year"
	FilmSortLikes FilmSort = "likes"
)

// PopularFilter narrows the popular films listing.
type PopularFilter struct {
	Count   int
	GenreID *int64
	Year    *int
}

// SearchBy selects which fields a film search matches.
type SearchBy struct {
	Title    bool
	Director bool
}
