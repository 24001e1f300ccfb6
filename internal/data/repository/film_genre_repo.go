package repository

import (
	"context"
	"filmorate/internal/data/entity"
	"filmorate/pkg/database"
	"fmt"

	"go.uber.org/zap"
)

type FilmGenreRepository interface {
	// Bridge table operations
	CreateBatch(ctx context.Context, filmID int64, genreIDs []int64) error
	DeleteByFilmID(ctx context.Context, filmID int64) error
	FindByFilmIDs(ctx context.Context, filmIDs []int64) (map[int64][]entity.Genre, error)
}

type filmGenreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFilmGenreRepository(db database.PgxIface, log *zap.Logger) FilmGenreRepository {
	return &filmGenreRepository{
		db:  db,
		log: log.With(zap.String("repository", "film_genre")),
	}
}

func (r *filmGenreRepository) CreateBatch(ctx context.Context, filmID int64, genreIDs []int64) error {
	if len(genreIDs) == 0 {
		return nil
	}

	// Build batch insert
	query := `INSERT INTO film_genres (film_id, genre_id) VALUES `
	args := []any{}

	for i, genreID := range genreIDs {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d)", i*2+1, i*2+2)

		args = append(args, filmID, genreID)
	}
	query += ` ON CONFLICT DO NOTHING`

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create batch film_genres",
			zap.Error(err),
			zap.Int64("film_id", filmID),
			zap.Int("count", len(genreIDs)),
		)
		return fmt.Errorf("failed to create batch film_genres: %w", err)
	}

	return nil
}

func (r *filmGenreRepository) DeleteByFilmID(ctx context.Context, filmID int64) error {
	query := `DELETE FROM film_genres WHERE film_id = $1`

	_, err := r.db.Exec(ctx, query, filmID)
	if err != nil {
		r.log.Error("Failed to delete film_genres by film ID",
			zap.Error(err),
			zap.Int64("film_id", filmID),
		)
		return fmt.Errorf("failed to delete film_genres: %w", err)
	}

	return nil
}

// FindByFilmIDs loads the genres of several films in one query, keyed by film id.
func (r *filmGenreRepository) FindByFilmIDs(ctx context.Context, filmIDs []int64) (map[int64][]entity.Genre, error) {
	result := make(map[int64][]entity.Genre, len(filmIDs))
	if len(filmIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT fg.film_id, g.id, g.name
		FROM film_genres fg
		INNER JOIN genres g ON g.id = fg.genre_id
		WHERE fg.film_id = ANY($1)
		ORDER BY fg.film_id, g.id
	`

	rows, err := r.db.Query(ctx, query, filmIDs)
	if err != nil {
		r.log.Error("Failed to find genres by film IDs",
			zap.Error(err),
			zap.Int("count", len(filmIDs)),
		)
		return nil, fmt.Errorf("failed to find film genres: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var filmID int64
		var genre entity.Genre
		if err := rows.Scan(&filmID, &genre.ID, &genre.Name); err != nil {
			r.log.Error("Failed to scan film_genre row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan film_genre: %w", err)
		}
		result[filmID] = append(result[filmID], genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return result, nil
}
