package usecase

import (
	"context"
	"fmt"
	"slices"

	"filmorate/internal/data/entity"
	"filmorate/internal/data/repository"
)

// requireUser loads a user or fails with ErrNotFound.
func requireUser(ctx context.Context, repo *repository.Repository, id int64) (*entity.User, error) {
	user, err := repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	if user == nil {
		return nil, notFoundError("user %d not found", id)
	}
	return user, nil
}

func requireFilm(ctx context.Context, repo *repository.Repository, id int64) (*entity.Film, error) {
	film, err := repo.Film.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find film %d: %w", id, err)
	}
	if film == nil {
		return nil, notFoundError("film %d not found", id)
	}
	return film, nil
}

func requireReview(ctx context.Context, repo *repository.Repository, id int64) (*entity.Review, error) {
	review, err := repo.Review.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find review %d: %w", id, err)
	}
	if review == nil {
		return nil, notFoundError("review %d not found", id)
	}
	return review, nil
}

// uniqueSortedIDs drops duplicates and returns ids in ascending order.
func uniqueSortedIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	slices.Sort(result)
	return result
}

// attachFilmRelations fills genres and directors of films with two bulk queries.
func attachFilmRelations(ctx context.Context, repo *repository.Repository, films []*entity.Film) error {
	if len(films) == 0 {
		return nil
	}

	ids := make([]int64, len(films))
	for i, film := range films {
		ids[i] = film.ID
	}

	genres, err := repo.FilmGenre.FindByFilmIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load film genres: %w", err)
	}

	directors, err := repo.FilmDirector.FindByFilmIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load film directors: %w", err)
	}

	for _, film := range films {
		film.Genres = genres[film.ID]
		film.Directors = directors[film.ID]
	}
	return nil
}
