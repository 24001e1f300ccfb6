package response

import (
	"filmorate/internal/data/entity"
)

type GenreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type MPAResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type DirectorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func GenreToResponse(genre entity.Genre) GenreResponse {
	return GenreResponse{ID: genre.ID, Name: genre.Name}
}

func GenresToResponse(genres []entity.Genre) []GenreResponse {
	result := make([]GenreResponse, len(genres))
	for i, genre := range genres {
		result[i] = GenreToResponse(genre)
	}
	return result
}

func MPAToResponse(mpa entity.MPA) MPAResponse {
	return MPAResponse{ID: mpa.ID, Name: mpa.Name}
}

func MPAsToResponse(ratings []entity.MPA) []MPAResponse {
	result := make([]MPAResponse, len(ratings))
	for i, mpa := range ratings {
		result[i] = MPAToResponse(mpa)
	}
	return result
}

func DirectorToResponse(director entity.Director) DirectorResponse {
	return DirectorResponse{ID: director.ID, Name: director.Name}
}

func DirectorsToResponse(directors []entity.Director) []DirectorResponse {
	result := make([]DirectorResponse, len(directors))
	for i, director := range directors {
		result[i] = DirectorToResponse(director)
	}
	return result
}
