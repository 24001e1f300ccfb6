package repository

import (
	"context"
	"filmorate/internal/data/entity"
	"filmorate/pkg/database"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type DirectorRepository interface {
	Create(ctx context.Context, director *entity.Director) error
	FindByID(ctx context.Context, id int64) (*entity.Director, error)
	FindAll(ctx context.Context) ([]entity.Director, error)
	FindByIDs(ctx context.Context, ids []int64) ([]entity.Director, error)
	Update(ctx context.Context, director *entity.Director) error
	Delete(ctx context.Context, id int64) error
}

type directorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDirectorRepository(db database.PgxIface, log *zap.Logger) DirectorRepository {
	return &directorRepository{
		db:  db,
		log: log.With(zap.String("repository", "director")),
	}
}

func (r *directorRepository) Create(ctx context.Context, director *entity.Director) error {
	query := `INSERT INTO directors (name) VALUES ($1) RETURNING id`

	if err := r.db.QueryRow(ctx, query, director.Name).Scan(&director.ID); err != nil {
		r.log.Error("Failed to create director",
			zap.Error(err),
			zap.String("name", director.Name),
		)
		return fmt.Errorf("failed to create director: %w", err)
	}

	return nil
}

func (r *directorRepository) FindByID(ctx context.Context, id int64) (*entity.Director, error) {
	query := `SELECT id, name FROM directors WHERE id = $1`

	var director entity.Director
	err := r.db.QueryRow(ctx, query, id).Scan(&director.ID, &director.Name)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find director by ID",
			zap.Error(err),
			zap.Int64("director_id", id),
		)
		return nil, fmt.Errorf("failed to find director: %w", err)
	}

	return &director, nil
}

func (r *directorRepository) FindAll(ctx context.Context) ([]entity.Director, error) {
	return r.list(ctx, `SELECT id, name FROM directors ORDER BY id`)
}

func (r *directorRepository) FindByIDs(ctx context.Context, ids []int64) ([]entity.Director, error) {
	if len(ids) == 0 {
		return []entity.Director{}, nil
	}
	return r.list(ctx, `SELECT id, name FROM directors WHERE id = ANY($1) ORDER BY id`, ids)
}

func (r *directorRepository) Update(ctx context.Context, director *entity.Director) error {
	query := `UPDATE directors SET name = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, director.ID, director.Name)
	if err != nil {
		r.log.Error("Failed to update director",
			zap.Error(err),
			zap.Int64("director_id", director.ID),
		)
		return fmt.Errorf("failed to update director: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (r *directorRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM directors WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete director",
			zap.Error(err),
			zap.Int64("director_id", id),
		)
		return fmt.Errorf("failed to delete director: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrRecordNotFound
	}

	r.log.Info("Director deleted", zap.Int64("director_id", id))
	return nil
}

func (r *directorRepository) list(ctx context.Context, query string, args ...any) ([]entity.Director, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list directors", zap.Error(err))
		return nil, fmt.Errorf("failed to list directors: %w", err)
	}
	defer rows.Close()

	directors := []entity.Director{}
	for rows.Next() {
		var director entity.Director
		if err := rows.Scan(&director.ID, &director.Name); err != nil {
			r.log.Error("Failed to scan director row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan director: %w", err)
		}
		directors = append(directors, director)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return directors, nil
}
