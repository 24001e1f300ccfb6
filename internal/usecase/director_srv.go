package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"filmorate/internal/data/entity"
	"filmorate/internal/data/repository"
	"filmorate/internal/dto/request"
	"filmorate/internal/dto/response"

	"go.uber.org/zap"
)

type DirectorService interface {
	GetDirectors(ctx context.Context) ([]response.DirectorResponse, error)
	GetDirectorByID(ctx context.Context, id int64) (*response.DirectorResponse, error)
	CreateDirector(ctx context.Context, req *request.DirectorRequest) (*response.DirectorResponse, error)
	UpdateDirector(ctx context.Context, req *request.DirectorRequest) (*response.DirectorResponse, error)
	DeleteDirector(ctx context.Context, id int64) error
}

type directorService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDirectorService(repo *repository.Repository, log *zap.Logger) DirectorService {
	return &directorService{
		repo: repo,
		log:  log.With(zap.String("service", "director")),
	}
}

func (s *directorService) GetDirectors(ctx context.Context) ([]response.DirectorResponse, error) {
	directors, err := s.repo.Director.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get directors: %w", err)
	}

	return response.DirectorsToResponse(directors), nil
}

func (s *directorService) GetDirectorByID(ctx context.Context, id int64) (*response.DirectorResponse, error) {
	director, err := s.repo.Director.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get director: %w", err)
	}
	if director == nil {
		return nil, notFoundError("director %d not found", id)
	}

	resp := response.DirectorToResponse(*director)
	return &resp, nil
}

func (s *directorService) CreateDirector(ctx context.Context, req *request.DirectorRequest) (*response.DirectorResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError("name must not be blank")
	}

	director := &entity.Director{Name: name}
	if err := s.repo.Director.Create(ctx, director); err != nil {
		return nil, fmt.Errorf("create director: %w", err)
	}

	s.log.Info("Director created",
		zap.Int64("director_id", director.ID),
		zap.String("name", director.Name),
	)

	resp := response.DirectorToResponse(*director)
	return &resp, nil
}

func (s *directorService) UpdateDirector(ctx context.Context, req *request.DirectorRequest) (*response.DirectorResponse, error) {
	if req.ID < 1 {
		return nil, validationError("id is required")
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError("name must not be blank")
	}

	director := &entity.Director{ID: req.ID, Name: name}
	if err := s.repo.Director.Update(ctx, director); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, notFoundError("director %d not found", req.ID)
		}
		return nil, fmt.Errorf("update director: %w", err)
	}

	resp := response.DirectorToResponse(*director)
	return &resp, nil
}

func (s *directorService) DeleteDirector(ctx context.Context, id int64) error {
	if err := s.repo.Director.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return notFoundError("director %d not found", id)
		}
		return fmt.Errorf("delete director: %w", err)
	}

	s.log.Info("Director deleted", zap.Int64("director_id", id))
	return nil
}
