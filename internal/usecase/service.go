package usecase

import (
	"filmorate/internal/data/repository"
	"filmorate/pkg/cache"

	"go.uber.org/zap"
)

type Service struct {
	Film           FilmService
	User           UserService
	Friend         FriendService
	Recommendation RecommendationService
	Event          EventService
	Genre          GenreService
	MPA            MPAService
	Director       DirectorService
	Review         ReviewService
}

func NewService(repo *repository.Repository, lookupCache cache.Cache, log *zap.Logger) *Service {
	events := NewEventService(repo, log)

	return &Service{
		Film:           NewFilmService(repo, events, log),
		User:           NewUserService(repo, log),
		Friend:         NewFriendService(repo, events, log),
		Recommendation: NewRecommendationService(repo, log),
		Event:          events,
		Genre:          NewGenreService(repo, lookupCache, log),
		MPA:            NewMPAService(repo, lookupCache, log),
		Director:       NewDirectorService(repo, log),
		Review:         NewReviewService(repo, events, log),
	}
}
