package adaptor

import (
	"net/http"

	"filmorate/internal/dto/request"
	"filmorate/internal/usecase"
	"filmorate/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	users           usecase.UserService
	friends         usecase.FriendService
	recommendations usecase.RecommendationService
	events          usecase.EventService
	log             *zap.Logger
}

func NewUserHandler(service *usecase.Service, log *zap.Logger) *UserHandler {
	return &UserHandler{
		users:           service.User,
		friends:         service.Friend,
		recommendations: service.Recommendation,
		events:          service.Event,
		log:             log.With(zap.String("handler", "user")),
	}
}

// GetUsers handles GET /users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.GetUsers(r.Context())
	if err != nil {
		handleServiceError(h.log, w, r, err, "get users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", users)
}

// GetUserByID handles GET /users/{id}
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.users.GetUserByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get user by ID")
		return
	}

	utils.ResponseSuccess(w, "User retrieved successfully", user)
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.UserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.users.CreateUser(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "create user")
		return
	}

	utils.ResponseCreated(w, "User created successfully", user)
}

// UpdateUser handles PUT /users; the id travels in the body
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req request.UserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.users.UpdateUser(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", user)
}

// DeleteUser handles DELETE /users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.users.DeleteUser(r.Context(), id); err != nil {
		handleServiceError(h.log, w, r, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted successfully", nil)
}

// AddFriend handles PUT /users/{id}/friends/{friendId}
func (h *UserHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	userID, friendID, ok := h.pair(w, r, "friendId")
	if !ok {
		return
	}

	if err := h.friends.AddFriend(r.Context(), userID, friendID); err != nil {
		handleServiceError(h.log, w, r, err, "add friend")
		return
	}

	utils.ResponseSuccess(w, "Friend added", nil)
}

// RemoveFriend handles DELETE /users/{id}/friends/{friendId}
func (h *UserHandler) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	userID, friendID, ok := h.pair(w, r, "friendId")
	if !ok {
		return
	}

	if err := h.friends.RemoveFriend(r.Context(), userID, friendID); err != nil {
		handleServiceError(h.log, w, r, err, "remove friend")
		return
	}

	utils.ResponseSuccess(w, "Friend removed", nil)
}

// GetFriends handles GET /users/{id}/friends
func (h *UserHandler) GetFriends(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	friends, err := h.friends.GetFriends(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get friends")
		return
	}

	utils.ResponseSuccess(w, "Friends retrieved successfully", friends)
}

// GetCommonFriends handles GET /users/{id}/friends/common/{otherId}
func (h *UserHandler) GetCommonFriends(w http.ResponseWriter, r *http.Request) {
	userID, otherID, ok := h.pair(w, r, "otherId")
	if !ok {
		return
	}

	friends, err := h.friends.GetCommonFriends(r.Context(), userID, otherID)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get common friends")
		return
	}

	utils.ResponseSuccess(w, "Common friends retrieved successfully", friends)
}

// GetRecommendations handles GET /users/{id}/recommendations
func (h *UserHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	films, err := h.recommendations.GetRecommendations(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get recommendations")
		return
	}

	utils.ResponseSuccess(w, "Recommendations retrieved successfully", films)
}

// GetFeed handles GET /users/{id}/feed
func (h *UserHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	feed, err := h.events.GetFeed(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get feed")
		return
	}

	utils.ResponseSuccess(w, "Feed retrieved successfully", feed)
}

func (h *UserHandler) pair(w http.ResponseWriter, r *http.Request, other string) (int64, int64, bool) {
	userID, ok := pathID(w, r, "id")
	if !ok {
		return 0, 0, false
	}
	otherID, ok := pathID(w, r, other)
	if !ok {
		return 0, 0, false
	}
	return userID, otherID, true
}
