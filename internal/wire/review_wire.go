package wire

import (
	"filmorate/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	r.Route("/reviews", func(r chi.Router) {
		// ==================== CRUD ====================
		r.Get("/", reviewHandler.GetReviews) // ?filmId=&count=
		r.Post("/", reviewHandler.CreateReview)
		r.Put("/", reviewHandler.UpdateReview)
		r.Get("/{id}", reviewHandler.GetReviewByID)
		r.Delete("/{id}", reviewHandler.DeleteReview)

		// ==================== RATINGS ====================
		r.Put("/{id}/like/{userId}", reviewHandler.AddLike)
		r.Put("/{id}/dislike/{userId}", reviewHandler.AddDislike)
		r.Delete("/{id}/like/{userId}", reviewHandler.RemoveLike)
		r.Delete("/{id}/dislike/{userId}", reviewHandler.RemoveDislike)
	})
}
