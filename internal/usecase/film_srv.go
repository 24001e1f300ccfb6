package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"filmorate/internal/data/entity"
	"filmorate/internal/data/repository"
	"filmorate/internal/dto/request"
	"filmorate/internal/dto/response"

	"go.uber.org/zap"
)

type FilmService interface {
	GetFilms(ctx context.Context) ([]response.FilmResponse, error)
	GetFilmByID(ctx context.Context, id int64) (*response.FilmResponse, error)
	CreateFilm(ctx context.Context, req *request.FilmRequest) (*response.FilmResponse, error)
	UpdateFilm(ctx context.Context, req *request.FilmRequest) (*response.FilmResponse, error)
	DeleteFilm(ctx context.Context, id int64) error

	// Likes
	AddLike(ctx context.Context, filmID, userID int64) error
	RemoveLike(ctx context.Context, filmID, userID int64) error

	// Listings
	GetPopular(ctx context.Context, req request.PopularRequest) ([]response.FilmResponse, error)
	GetByDirector(ctx context.Context, directorID int64, sortBy string) ([]response.FilmResponse, error)
	Search(ctx context.Context, query, by string) ([]response.FilmResponse, error)
	GetCommon(ctx context.Context, userID, friendID int64) ([]response.FilmResponse, error)
}

type filmService struct {
	repo   *repository.Repository
	events EventService
	log    *zap.Logger
}

func NewFilmService(
	repo *repository.Repository,
	events EventService,
	log *zap.Logger,
) FilmService {
	return &filmService{
		repo:   repo,
		events: events,
		log:    log.With(zap.String("service", "film")),
	}
}

func (s *filmService) GetFilms(ctx context.Context) ([]response.FilmResponse, error) {
	films, err := s.repo.Film.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get films", zap.Error(err))
		return nil, fmt.Errorf("get films: %w", err)
	}

	return s.toResponses(ctx, films)
}

func (s *filmService) GetFilmByID(ctx context.Context, id int64) (*response.FilmResponse, error) {
	film, err := requireFilm(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}

	if err := attachFilmRelations(ctx, s.repo, []*entity.Film{film}); err != nil {
		return nil, err
	}

	resp := response.FilmToResponse(film)
	return &resp, nil
}

func (s *filmService) CreateFilm(ctx context.Context, req *request.FilmRequest) (*response.FilmResponse, error) {
	film, err := s.buildFilm(ctx, req)
	if err != nil {
		return nil, err
	}

	err = s.repo.Tx.WithinTx(ctx, func(repo *repository.Repository) error {
		if err := repo.Film.Create(ctx, film); err != nil {
			s.log.Error("Failed to create film", zap.Error(err), zap.String("name", film.Name))
			return fmt.Errorf("create film: %w", err)
		}
		return writeRelations(ctx, repo, film)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Film created",
		zap.Int64("film_id", film.ID),
		zap.String("name", film.Name),
		zap.Int("genres", len(film.Genres)),
		zap.Int("directors", len(film.Directors)),
	)

	resp := response.FilmToResponse(film)
	return &resp, nil
}

func (s *filmService) UpdateFilm(ctx context.Context, req *request.FilmRequest) (*response.FilmResponse, error) {
	if req.ID < 1 {
		return nil, validationError("id is required")
	}

	if _, err := requireFilm(ctx, s.repo, req.ID); err != nil {
		return nil, err
	}

	film, err := s.buildFilm(ctx, req)
	if err != nil {
		return nil, err
	}
	film.ID = req.ID

	// Row update and link replacement commit together
	err = s.repo.Tx.WithinTx(ctx, func(repo *repository.Repository) error {
		if err := repo.Film.Update(ctx, film); err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return notFoundError("film %d not found", film.ID)
			}
			s.log.Error("Failed to update film", zap.Error(err), zap.Int64("film_id", film.ID))
			return fmt.Errorf("update film: %w", err)
		}

		if err := repo.FilmGenre.DeleteByFilmID(ctx, film.ID); err != nil {
			return fmt.Errorf("clear film genres: %w", err)
		}
		if err := repo.FilmDirector.DeleteByFilmID(ctx, film.ID); err != nil {
			return fmt.Errorf("clear film directors: %w", err)
		}
		return writeRelations(ctx, repo, film)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Film updated", zap.Int64("film_id", film.ID))

	return s.GetFilmByID(ctx, film.ID)
}

func (s *filmService) DeleteFilm(ctx context.Context, id int64) error {
	if err := s.repo.Film.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return notFoundError("film %d not found", id)
		}
		return fmt.Errorf("delete film: %w", err)
	}

	s.log.Info("Film deleted", zap.Int64("film_id", id))
	return nil
}

func (s *filmService) AddLike(ctx context.Context, filmID, userID int64) error {
	if _, err := requireFilm(ctx, s.repo, filmID); err != nil {
		return err
	}
	if _, err := requireUser(ctx, s.repo, userID); err != nil {
		return err
	}

	added, err := s.repo.Like.Add(ctx, filmID, userID)
	if err != nil {
		return fmt.Errorf("add like: %w", err)
	}

	if !added {
		s.log.Debug("Like already present",
			zap.Int64("film_id", filmID),
			zap.Int64("user_id", userID),
		)
	}

	s.events.Record(ctx, userID, entity.EventTypeLike, entity.OperationAdd, filmID)
	return nil
}

func (s *filmService) RemoveLike(ctx context.Context, filmID, userID int64) error {
	if _, err := requireFilm(ctx, s.repo, filmID); err != nil {
		return err
	}
	if _, err := requireUser(ctx, s.repo, userID); err != nil {
		return err
	}

	removed, err := s.repo.Like.Remove(ctx, filmID, userID)
	if err != nil {
		return fmt.Errorf("remove like: %w", err)
	}
	if !removed {
		return notFoundError("user %d has not liked film %d", userID, filmID)
	}

	s.events.Record(ctx, userID, entity.EventTypeLike, entity.OperationRemove, filmID)
	return nil
}

func (s *filmService) GetPopular(ctx context.Context, req request.PopularRequest) ([]response.FilmResponse, error) {
	if req.Count < 1 {
		return nil, validationError("count must be positive")
	}

	films, err := s.repo.Film.FindPopular(ctx, entity.PopularFilter{
		Count:   req.Count,
		GenreID: req.GenreID,
		Year:    req.Year,
	})
	if err != nil {
		s.log.Error("Failed to get popular films", zap.Error(err), zap.Int("count", req.Count))
		return nil, fmt.Errorf("get popular films: %w", err)
	}

	return s.toResponses(ctx, films)
}

func (s *filmService) GetByDirector(ctx context.Context, directorID int64, sortBy string) ([]response.FilmResponse, error) {
	var sort entity.FilmSort
	switch strings.ToLower(sortBy) {
	case "", string(entity.FilmSortYear):
		sort = entity.FilmSortYear
	case string(entity.FilmSortLikes):
		sort = entity.FilmSortLikes
	default:
		return nil, validationError("sortBy must be one of: year, likes")
	}

	director, err := s.repo.Director.FindByID(ctx, directorID)
	if err != nil {
		return nil, fmt.Errorf("find director: %w", err)
	}
	if director == nil {
		return nil, notFoundError("director %d not found", directorID)
	}

	films, err := s.repo.Film.FindByDirector(ctx, directorID, sort)
	if err != nil {
		return nil, fmt.Errorf("get films by director: %w", err)
	}

	return s.toResponses(ctx, films)
}

func (s *filmService) Search(ctx context.Context, query, by string) ([]response.FilmResponse, error) {
	searchBy, err := parseSearchBy(by)
	if err != nil {
		return nil, err
	}

	films, err := s.repo.Film.Search(ctx, strings.TrimSpace(query), searchBy)
	if err != nil {
		s.log.Error("Failed to search films", zap.Error(err), zap.String("query", query))
		return nil, fmt.Errorf("search films: %w", err)
	}

	return s.toResponses(ctx, films)
}

func (s *filmService) GetCommon(ctx context.Context, userID, friendID int64) ([]response.FilmResponse, error) {
	if _, err := requireUser(ctx, s.repo, userID); err != nil {
		return nil, err
	}
	if _, err := requireUser(ctx, s.repo, friendID); err != nil {
		return nil, err
	}

	films, err := s.repo.Film.FindCommon(ctx, userID, friendID)
	if err != nil {
		return nil, fmt.Errorf("get common films: %w", err)
	}

	return s.toResponses(ctx, films)
}

// buildFilm checks business rules and referenced ids, returning the entity to persist.
func (s *filmService) buildFilm(ctx context.Context, req *request.FilmRequest) (*entity.Film, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	releaseDate, err := time.Parse("2006-01-02", req.ReleaseDate)
	if err != nil {
		return nil, validationError("invalid releaseDate %q", req.ReleaseDate)
	}
	if releaseDate.Before(entity.CinemaBirthday) {
		return nil, validationError("releaseDate must not be before %s", entity.CinemaBirthday.Format("2006-01-02"))
	}
	if req.Duration < 1 {
		return nil, validationError("duration must be positive")
	}
	if req.MPA == nil {
		return nil, validationError("mpa is required")
	}

	mpa, err := s.repo.MPA.FindByID(ctx, req.MPA.ID)
	if err != nil {
		return nil, fmt.Errorf("find mpa: %w", err)
	}
	if mpa == nil {
		return nil, validationError("mpa %d does not exist", req.MPA.ID)
	}

	genres, err := s.resolveGenres(ctx, req.Genres)
	if err != nil {
		return nil, err
	}

	directors, err := s.resolveDirectors(ctx, req.Directors)
	if err != nil {
		return nil, err
	}

	return &entity.Film{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		ReleaseDate: releaseDate,
		Duration:    req.Duration,
		MPA:         *mpa,
		Genres:      genres,
		Directors:   directors,
	}, nil
}

func (s *filmService) resolveGenres(ctx context.Context, refs []request.IDRef) ([]entity.Genre, error) {
	ids := uniqueSortedIDs(refIDs(refs))

	genres, err := s.repo.Genre.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find genres: %w", err)
	}
	if len(genres) != len(ids) {
		return nil, validationError("unknown genre ids in %v", ids)
	}
	return genres, nil
}

func (s *filmService) resolveDirectors(ctx context.Context, refs []request.IDRef) ([]entity.Director, error) {
	ids := uniqueSortedIDs(refIDs(refs))

	directors, err := s.repo.Director.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find directors: %w", err)
	}
	if len(directors) != len(ids) {
		return nil, validationError("unknown director ids in %v", ids)
	}
	return directors, nil
}

func writeRelations(ctx context.Context, repo *repository.Repository, film *entity.Film) error {
	genreIDs := make([]int64, len(film.Genres))
	for i, genre := range film.Genres {
		genreIDs[i] = genre.ID
	}
	if err := repo.FilmGenre.CreateBatch(ctx, film.ID, genreIDs); err != nil {
		return fmt.Errorf("link film genres: %w", err)
	}

	directorIDs := make([]int64, len(film.Directors))
	for i, director := range film.Directors {
		directorIDs[i] = director.ID
	}
	if err := repo.FilmDirector.CreateBatch(ctx, film.ID, directorIDs); err != nil {
		return fmt.Errorf("link film directors: %w", err)
	}

	return nil
}

func (s *filmService) toResponses(ctx context.Context, films []*entity.Film) ([]response.FilmResponse, error) {
	if err := attachFilmRelations(ctx, s.repo, films); err != nil {
		s.log.Error("Failed to load film relations", zap.Error(err))
		return nil, err
	}
	return response.FilmsToResponse(films), nil
}

func refIDs(refs []request.IDRef) []int64 {
	ids := make([]int64, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID
	}
	return ids
}

// parseSearchBy accepts "title", "director" or both separated by a comma.
func parseSearchBy(by string) (entity.SearchBy, error) {
	var searchBy entity.SearchBy
	if strings.TrimSpace(by) == "" {
		searchBy.Title = true
		return searchBy, nil
	}

	for _, part := range strings.Split(by, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "title":
			searchBy.Title = true
		case "director":
			searchBy.Director = true
		default:
			return searchBy, validationError("by must contain only title or director, got %q", part)
		}
	}
	return searchBy, nil
}
