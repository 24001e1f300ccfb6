package adaptor

import (
	"net/http"

	"filmorate/internal/dto/request"
	"filmorate/internal/usecase"
	"filmorate/pkg/utils"

	"go.uber.org/zap"
)

const defaultPopularCount = 10

type FilmHandler struct {
	service usecase.FilmService
	log     *zap.Logger
}

func NewFilmHandler(service usecase.FilmService, log *zap.Logger) *FilmHandler {
	return &FilmHandler{
		service: service,
		log:     log.With(zap.String("handler", "film")),
	}
}

// GetFilms handles GET /films
func (h *FilmHandler) GetFilms(w http.ResponseWriter, r *http.Request) {
	films, err := h.service.GetFilms(r.Context())
	if err != nil {
		handleServiceError(h.log, w, r, err, "get films")
		return
	}

	utils.ResponseSuccess(w, "Films retrieved successfully", films)
}

// GetFilmByID handles GET /films/{id}
func (h *FilmHandler) GetFilmByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	film, err := h.service.GetFilmByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get film by ID")
		return
	}

	utils.ResponseSuccess(w, "Film retrieved successfully", film)
}

// CreateFilm handles POST /films
func (h *FilmHandler) CreateFilm(w http.ResponseWriter, r *http.Request) {
	var req request.FilmRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	film, err := h.service.CreateFilm(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "create film")
		return
	}

	utils.ResponseCreated(w, "Film created successfully", film)
}

// UpdateFilm handles PUT /films; the id travels in the body
func (h *FilmHandler) UpdateFilm(w http.ResponseWriter, r *http.Request) {
	var req request.FilmRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	film, err := h.service.UpdateFilm(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "update film")
		return
	}

	utils.ResponseSuccess(w, "Film updated successfully", film)
}

// DeleteFilm handles DELETE /films/{id}
func (h *FilmHandler) DeleteFilm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteFilm(r.Context(), id); err != nil {
		handleServiceError(h.log, w, r, err, "delete film")
		return
	}

	utils.ResponseSuccess(w, "Film deleted successfully", nil)
}

// AddLike handles PUT /films/{id}/like/{userId}
func (h *FilmHandler) AddLike(w http.ResponseWriter, r *http.Request) {
	filmID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	if err := h.service.AddLike(r.Context(), filmID, userID); err != nil {
		handleServiceError(h.log, w, r, err, "add like")
		return
	}

	utils.ResponseSuccess(w, "Like added", nil)
}

// RemoveLike handles DELETE /films/{id}/like/{userId}
func (h *FilmHandler) RemoveLike(w http.ResponseWriter, r *http.Request) {
	filmID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	if err := h.service.RemoveLike(r.Context(), filmID, userID); err != nil {
		handleServiceError(h.log, w, r, err, "remove like")
		return
	}

	utils.ResponseSuccess(w, "Like removed", nil)
}

// GetPopular handles GET /films/popular?count=&genreId=&year=
func (h *FilmHandler) GetPopular(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.PopularRequest{Count: defaultPopularCount}

	if raw := query.Get("count"); raw != "" {
		count, err := utils.ParseOptionalInt(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid count", map[string]string{"count": err.Error()})
			return
		}
		req.Count = *count
	}

	if raw := query.Get("genreId"); raw != "" {
		genreID, err := utils.ParseID(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid genreId", map[string]string{"genreId": err.Error()})
			return
		}
		req.GenreID = &genreID
	}

	year, err := utils.ParseOptionalInt(query.Get("year"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid year", map[string]string{"year": err.Error()})
		return
	}
	req.Year = year

	films, err := h.service.GetPopular(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get popular films")
		return
	}

	utils.ResponseSuccess(w, "Popular films retrieved successfully", films)
}

// GetByDirector handles GET /films/director/{directorId}?sortBy=year|likes
func (h *FilmHandler) GetByDirector(w http.ResponseWriter, r *http.Request) {
	directorID, ok := pathID(w, r, "directorId")
	if !ok {
		return
	}

	films, err := h.service.GetByDirector(r.Context(), directorID, r.URL.Query().Get("sortBy"))
	if err != nil {
		handleServiceError(h.log, w, r, err, "get films by director")
		return
	}

	utils.ResponseSuccess(w, "Films retrieved successfully", films)
}

// Search handles GET /films/search?query=&by=
func (h *FilmHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	films, err := h.service.Search(r.Context(), query.Get("query"), query.Get("by"))
	if err != nil {
		handleServiceError(h.log, w, r, err, "search films")
		return
	}

	utils.ResponseSuccess(w, "Films retrieved successfully", films)
}

// GetCommon handles GET /films/common?userId=&friendId=
func (h *FilmHandler) GetCommon(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	userID, err := utils.ParseID(query.Get("userId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid userId", map[string]string{"userId": err.Error()})
		return
	}
	friendID, err := utils.ParseID(query.Get("friendId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid friendId", map[string]string{"friendId": err.Error()})
		return
	}

	films, err := h.service.GetCommon(r.Context(), userID, friendID)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get common films")
		return
	}

	utils.ResponseSuccess(w, "Common films retrieved successfully", films)
}
