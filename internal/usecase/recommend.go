package usecase

import (
	"context"
	"fmt"
	"sort"

	"filmorate/internal/data/repository"
	"filmorate/internal/dto/response"
	"filmorate/pkg/metrics"

	"go.uber.org/zap"
)

// LikeIndex maps a user id to the set of film ids that user liked.
type LikeIndex map[int64]map[int64]struct{}

// Recommend returns the films liked by the user whose likes overlap most with
// the target's, minus those the target already liked. Among users with equal
// overlap the smallest user id wins. The result is unordered.
func Recommend(index LikeIndex, userID int64) []int64 {
	target := index[userID]
	if len(target) == 0 {
		return nil
	}

	// Visit candidates in id order so ties resolve deterministically
	candidates := make([]int64, 0, len(index))
	for id := range index {
		if id != userID {
			candidates = append(candidates, id)
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

	var bestID int64
	bestOverlap := 0
	for _, id := range candidates {
		overlap := 0
		for filmID := range index[id] {
			if _, ok := target[filmID]; ok {
				overlap++
			}
		}
		if overlap > bestOverlap {
			bestID, bestOverlap = id, overlap
		}
	}

	if bestOverlap == 0 {
		return nil
	}

	var result []int64
	for filmID := range index[bestID] {
		if _, ok := target[filmID]; !ok {
			result = append(result, filmID)
		}
	}
	return result
}

type RecommendationService interface {
	GetRecommendations(ctx context.Context, userID int64) ([]response.FilmResponse, error)
}

type recommendationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRecommendationService(repo *repository.Repository, log *zap.Logger) RecommendationService {
	return &recommendationService{
		repo: repo,
		log:  log.With(zap.String("service", "recommendation")),
	}
}

func (s *recommendationService) GetRecommendations(ctx context.Context, userID int64) ([]response.FilmResponse, error) {
	if _, err := requireUser(ctx, s.repo, userID); err != nil {
		return nil, err
	}

	likes, err := s.repo.Like.FindAllByUser(ctx)
	if err != nil {
		s.log.Error("Failed to load likes", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("load likes: %w", err)
	}

	filmIDs := Recommend(LikeIndex(likes), userID)

	// FindByIDs orders by like count, then id
	films, err := s.repo.Film.FindByIDs(ctx, filmIDs)
	if err != nil {
		return nil, fmt.Errorf("load recommended films: %w", err)
	}

	if err := attachFilmRelations(ctx, s.repo, films); err != nil {
		return nil, err
	}
	result := response.FilmsToResponse(films)

	metrics.RecordRecommendations(len(result))
	s.log.Debug("Recommendations computed",
		zap.Int64("user_id", userID),
		zap.Int("count", len(result)),
	)
	return result, nil
}
