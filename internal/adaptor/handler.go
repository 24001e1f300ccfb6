package adaptor

import (
	"filmorate/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Film     *FilmHandler
	User     *UserHandler
	Lookup   *LookupHandler
	Director *DirectorHandler
	Review   *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Film:     NewFilmHandler(service.Film, log),
		User:     NewUserHandler(service, log),
		Lookup:   NewLookupHandler(service.Genre, service.MPA, log),
		Director: NewDirectorHandler(service.Director, log),
		Review:   NewReviewHandler(service.Review, log),
	}
}
