package wire

import (
	"filmorate/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Route("/users", func(r chi.Router) {
		// ==================== CRUD ====================
		r.Get("/", userHandler.GetUsers)
		r.Post("/", userHandler.CreateUser)
		r.Put("/", userHandler.UpdateUser)
		r.Get("/{id}", userHandler.GetUserByID)
		r.Delete("/{id}", userHandler.DeleteUser)

		// ==================== FRIENDS ====================
		r.Get("/{id}/friends", userHandler.GetFriends)
		r.Put("/{id}/friends/{friendId}", userHandler.AddFriend)
		r.Delete("/{id}/friends/{friendId}", userHandler.RemoveFriend)
		r.Get("/{id}/friends/common/{otherId}", userHandler.GetCommonFriends)

		// ==================== ACTIVITY ====================
		r.Get("/{id}/recommendations", userHandler.GetRecommendations)
		r.Get("/{id}/feed", userHandler.GetFeed)
	})
}
