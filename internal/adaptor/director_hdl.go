package adaptor

import (
	"net/http"

	"filmorate/internal/dto/request"
	"filmorate/internal/usecase"
	"filmorate/pkg/utils"

	"go.uber.org/zap"
)

type DirectorHandler struct {
	service usecase.DirectorService
	log     *zap.Logger
}

func NewDirectorHandler(service usecase.DirectorService, log *zap.Logger) *DirectorHandler {
	return &DirectorHandler{
		service: service,
		log:     log.With(zap.String("handler", "director")),
	}
}

// GetDirectors handles GET /directors
func (h *DirectorHandler) GetDirectors(w http.ResponseWriter, r *http.Request) {
	directors, err := h.service.GetDirectors(r.Context())
	if err != nil {
		handleServiceError(h.log, w, r, err, "get directors")
		return
	}

	utils.ResponseSuccess(w, "Directors retrieved successfully", directors)
}

// GetDirectorByID handles GET /directors/{id}
func (h *DirectorHandler) GetDirectorByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	director, err := h.service.GetDirectorByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get director by ID")
		return
	}

	utils.ResponseSuccess(w, "Director retrieved successfully", director)
}

// CreateDirector handles POST /directors
func (h *DirectorHandler) CreateDirector(w http.ResponseWriter, r *http.Request) {
	var req request.DirectorRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	director, err := h.service.CreateDirector(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "create director")
		return
	}

	utils.ResponseCreated(w, "Director created successfully", director)
}

// UpdateDirector handles PUT /directors
func (h *DirectorHandler) UpdateDirector(w http.ResponseWriter, r *http.Request) {
	var req request.DirectorRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	director, err := h.service.UpdateDirector(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "update director")
		return
	}

	utils.ResponseSuccess(w, "Director updated successfully", director)
}

// DeleteDirector handles DELETE /directors/{id}
func (h *DirectorHandler) DeleteDirector(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteDirector(r.Context(), id); err != nil {
		handleServiceError(h.log, w, r, err, "delete director")
		return
	}

	utils.ResponseSuccess(w, "Director deleted successfully", nil)
}
