package response

import (
	"filmorate/internal/data/entity"
)

type ReviewResponse struct {
	ReviewID   int64  `json:"reviewId"`
	Content    string `json:"content"`
	IsPositive bool   `json:"isPositive"`
	UserID     int64  `json:"userId"`
	FilmID     int64  `json:"filmId"`
	Useful     int    `json:"useful"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ReviewID:   review.ID,
		Content:    review.Content,
		IsPositive: review.IsPositive,
		UserID:     review.UserID,
		FilmID:     review.FilmID,
		Useful:     review.Useful,
	}
}

func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	result := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		result[i] = ReviewToResponse(review)
	}
	return result
}
