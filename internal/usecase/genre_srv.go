package usecase

import (
	"context"
	"fmt"

	"filmorate/internal/data/entity"
	"filmorate/internal/data/repository"
	"filmorate/internal/dto/response"
	"filmorate/pkg/cache"

	"go.uber.org/zap"
)

// GenreService serves the immutable genre set through the lookup cache.
type GenreService interface {
	GetGenres(ctx context.Context) ([]response.GenreResponse, error)
	GetGenreByID(ctx context.Context, id int64) (*response.GenreResponse, error)
}

type genreService struct {
	repo  *repository.Repository
	cache cache.Cache
	log   *zap.Logger
}

func NewGenreService(repo *repository.Repository, c cache.Cache, log *zap.Logger) GenreService {
	return &genreService{
		repo:  repo,
		cache: c,
		log:   log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, _, err := cached(ctx, s.cache, s.log, "genre:all", func() ([]entity.Genre, bool, error) {
		genres, err := s.repo.Genre.FindAll(ctx)
		return genres, err == nil, err
	})
	if err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}

	return response.GenresToResponse(genres), nil
}

func (s *genreService) GetGenreByID(ctx context.Context, id int64) (*response.GenreResponse, error) {
	genre, found, err := cached(ctx, s.cache, s.log, fmt.Sprintf("genre:%d", id), func() (*entity.Genre, bool, error) {
		genre, err := s.repo.Genre.FindByID(ctx, id)
		return genre, genre != nil, err
	})
	if err != nil {
		return nil, fmt.Errorf("get genre: %w", err)
	}
	if !found {
		return nil, notFoundError("genre %d not found", id)
	}

	resp := response.GenreToResponse(*genre)
	return &resp, nil
}

// MPAService serves the immutable MPA rating set through the lookup cache.
type MPAService interface {
	GetRatings(ctx context.Context) ([]response.MPAResponse, error)
	GetRatingByID(ctx context.Context, id int64) (*response.MPAResponse, error)
}

type mpaService struct {
	repo  *repository.Repository
	cache cache.Cache
	log   *zap.Logger
}

func NewMPAService(repo *repository.Repository, c cache.Cache, log *zap.Logger) MPAService {
	return &mpaService{
		repo:  repo,
		cache: c,
		log:   log.With(zap.String("service", "mpa")),
	}
}

func (s *mpaService) GetRatings(ctx context.Context) ([]response.MPAResponse, error) {
	ratings, _, err := cached(ctx, s.cache, s.log, "mpa:all", func() ([]entity.MPA, bool, error) {
		ratings, err := s.repo.MPA.FindAll(ctx)
		return ratings, err == nil, err
	})
	if err != nil {
		return nil, fmt.Errorf("get mpa ratings: %w", err)
	}

	return response.MPAsToResponse(ratings), nil
}

func (s *mpaService) GetRatingByID(ctx context.Context, id int64) (*response.MPAResponse, error) {
	mpa, found, err := cached(ctx, s.cache, s.log, fmt.Sprintf("mpa:%d", id), func() (*entity.MPA, bool, error) {
		mpa, err := s.repo.MPA.FindByID(ctx, id)
		return mpa, mpa != nil, err
	})
	if err != nil {
		return nil, fmt.Errorf("get mpa rating: %w", err)
	}
	if !found {
		return nil, notFoundError("mpa %d not found", id)
	}

	resp := response.MPAToResponse(*mpa)
	return &resp, nil
}

// cached reads key from the cache and falls back to load on a miss.
// Cache failures are logged and never fail the request. Values that load
// reports as not found are not stored.
func cached[T any](ctx context.Context, c cache.Cache, log *zap.Logger, key string, load func() (T, bool, error)) (T, bool, error) {
	var value T
	hit, err := c.Get(ctx, key, &value)
	if err != nil {
		log.Warn("Cache read failed, using database", zap.String("key", key), zap.Error(err))
	}
	if hit {
		return value, true, nil
	}

	value, found, err := load()
	if err != nil || !found {
		return value, found, err
	}

	if err := c.Set(ctx, key, value); err != nil {
		log.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
	return value, true, nil
}
