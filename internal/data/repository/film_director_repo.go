package repository

import (
	"context"
	"filmorate/internal/data/entity"
	"filmorate/pkg/database"
	"fmt"

	"go.uber.org/zap"
)

type FilmDirectorRepository interface {
	// Bridge table operations
	CreateBatch(ctx context.Context, filmID int64, directorIDs []int64) error
	DeleteByFilmID(ctx context.Context, filmID int64) error
	FindByFilmIDs(ctx context.Context, filmIDs []int64) (map[int64][]entity.Director, error)
}

type filmDirectorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFilmDirectorRepository(db database.PgxIface, log *zap.Logger) FilmDirectorRepository {
	return &filmDirectorRepository{
		db:  db,
		log: log.With(zap.String("repository", "film_director")),
	}
}

func (r *filmDirectorRepository) CreateBatch(ctx context.Context, filmID int64, directorIDs []int64) error {
	if len(directorIDs) == 0 {
		return nil
	}

	// Build batch insert
	query := `INSERT INTO film_directors (film_id, director_id) VALUES `
	args := []any{}

	for i, directorID := range directorIDs {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d)", i*2+1, i*2+2)

		args = append(args, filmID, directorID)
	}
	query += ` ON CONFLICT DO NOTHING`

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create batch film_directors",
			zap.Error(err),
			zap.Int64("film_id", filmID),
			zap.Int("count", len(directorIDs)),
		)
		return fmt.Errorf("failed to create batch film_directors: %w", err)
	}

	return nil
}

func (r *filmDirectorRepository) DeleteByFilmID(ctx context.Context, filmID int64) error {
	query := `DELETE FROM film_directors WHERE film_id = $1`

	_, err := r.db.Exec(ctx, query, filmID)
	if err != nil {
		r.log.Error("Failed to delete film_directors by film ID",
			zap.Error(err),
			zap.Int64("film_id", filmID),
		)
		return fmt.Errorf("failed to delete film_directors: %w", err)
	}

	return nil
}

// FindByFilmIDs loads the directors of several films in one query, keyed by film id.
func (r *filmDirectorRepository) FindByFilmIDs(ctx context.Context, filmIDs []int64) (map[int64][]entity.Director, error) {
	result := make(map[int64][]entity.Director, len(filmIDs))
	if len(filmIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT fd.film_id, d.id, d.name
		FROM film_directors fd
		INNER JOIN directors d ON d.id = fd.director_id
		WHERE fd.film_id = ANY($1)
		ORDER BY fd.film_id, d.id
	`

	rows, err := r.db.Query(ctx, query, filmIDs)
	if err != nil {
		r.log.Error("Failed to find directors by film IDs",
			zap.Error(err),
			zap.Int("count", len(filmIDs)),
		)
		return nil, fmt.Errorf("failed to find film directors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var filmID int64
		var director entity.Director
		if err := rows.Scan(&filmID, &director.ID, &director.Name); err != nil {
			r.log.Error("Failed to scan film_director row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan film_director: %w", err)
		}
		result[filmID] = append(result[filmID], director)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return result, nil
}
