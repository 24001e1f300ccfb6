package repository

import (
	"context"
	"filmorate/internal/data/entity"
	"filmorate/pkg/database"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FilmRepository interface {
	// CRUD Film
	Create(ctx context.Context, film *entity.Film) error
	FindByID(ctx context.Context, id int64) (*entity.Film, error)
	FindAll(ctx context.Context) ([]*entity.Film, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.Film, error)
	Update(ctx context.Context, film *entity.Film) error
	Delete(ctx context.Context, id int64) error

	// Listings
	FindPopular(ctx context.Context, filter entity.PopularFilter) ([]*entity.Film, error)
	FindByDirector(ctx context.Context, directorID int64, sortBy entity.FilmSort) ([]*entity.Film, error)
	Search(ctx context.Context, query string, by entity.SearchBy) ([]*entity.Film, error)
	FindCommon(ctx context.Context, userID, friendID int64) ([]*entity.Film, error)
}

type filmRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFilmRepository(db database.PgxIface, log *zap.Logger) FilmRepository {
	return &filmRepository{
		db:  db,
		log: log.With(zap.String("repository", "film")),
	}
}

// film rows carry their MPA rating and aggregated like count
const filmSelect = `
		SELECT f.id, f.name, f.description, f.release_date, f.duration,
		       m.id, m.name, COUNT(fl.user_id) AS likes
		FROM films f
		JOIN mpa_ratings m ON m.id = f.mpa_id
		LEFT JOIN film_likes fl ON fl.film_id = f.id
`

const (
	filmGroupBy      = ` GROUP BY f.id, m.id`
	orderByLikes     = ` ORDER BY likes DESC, f.id ASC`
	orderByID        = ` ORDER BY f.id ASC`
	orderByYear      = ` ORDER BY f.release_date ASC, f.id ASC`
	directorFilter   = ` WHERE EXISTS (SELECT 1 FROM film_directors fd WHERE fd.film_id = f.id AND fd.director_id = $1)`
	commonLikeFilter = ` WHERE f.id IN (
		SELECT a.film_id FROM film_likes a
		JOIN film_likes b ON b.film_id = a.film_id
		WHERE a.user_id = $1 AND b.user_id = $2)`
)

func (r *filmRepository) Create(ctx context.Context, film *entity.Film) error {
	query := `
		INSERT INTO films (name, description, release_date, duration, mpa_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		film.Name,
		film.Description,
		film.ReleaseDate,
		film.Duration,
		film.MPA.ID,
	).Scan(&film.ID)

	if err != nil {
		r.log.Error("Failed to create film",
			zap.Error(err),
			zap.String("name", film.Name),
		)
		return fmt.Errorf("failed to create film: %w", err)
	}

	return nil
}

func (r *filmRepository) FindByID(ctx context.Context, id int64) (*entity.Film, error) {
	query := filmSelect + ` WHERE f.id = $1` + filmGroupBy

	film, err := scanFilm(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find film by ID",
			zap.Error(err),
			zap.Int64("film_id", id),
		)
		return nil, fmt.Errorf("failed to find film: %w", err)
	}

	return film, nil
}

func (r *filmRepository) FindAll(ctx context.Context) ([]*entity.Film, error) {
	return r.list(ctx, "find all films", filmSelect+filmGroupBy+orderByID)
}

func (r *filmRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Film, error) {
	if len(ids) == 0 {
		return []*entity.Film{}, nil
	}

	query := filmSelect + ` WHERE f.id = ANY($1)` + filmGroupBy + orderByLikes
	return r.list(ctx, "find films by ids", query, ids)
}

func (r *filmRepository) Update(ctx context.Context, film *entity.Film) error {
	query := `
		UPDATE films
		SET name = $2, description = $3, release_date = $4, duration = $5, mpa_id = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		film.ID,
		film.Name,
		film.Description,
		film.ReleaseDate,
		film.Duration,
		film.MPA.ID,
	)

	if err != nil {
		r.log.Error("Failed to update film",
			zap.Error(err),
			zap.Int64("film_id", film.ID),
		)
		return fmt.Errorf("failed to update film: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (r *filmRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM films WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete film",
			zap.Error(err),
			zap.Int64("film_id", id),
		)
		return fmt.Errorf("failed to delete film: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrRecordNotFound
	}

	r.log.Info("Film deleted", zap.Int64("film_id", id))
	return nil
}

func (r *filmRepository) FindPopular(ctx context.Context, filter entity.PopularFilter) ([]*entity.Film, error) {
	// Build query dengan optional filter
	var queryBuilder strings.Builder
	queryBuilder.WriteString(filmSelect)

	var conditions []string
	args := []any{}
	argCount := 1

	if filter.GenreID != nil {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM film_genres fg WHERE fg.film_id = f.id AND fg.genre_id = $%d)", argCount))
		args = append(args, *filter.GenreID)
		argCount++
	}

	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM f.release_date) = $%d", argCount))
		args = append(args, *filter.Year)
		argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}

	queryBuilder.WriteString(filmGroupBy + orderByLikes)
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argCount))
	args = append(args, filter.Count)

	return r.list(ctx, "find popular films", queryBuilder.String(), args...)
}

func (r *filmRepository) FindByDirector(ctx context.Context, directorID int64, sortBy entity.FilmSort) ([]*entity.Film, error) {
	order := orderByLikes
	if sortBy == entity.FilmSortYear {
		order = orderByYear
	}

	query := filmSelect + directorFilter + filmGroupBy + order
	return r.list(ctx, "find films by director", query, directorID)
}

func (r *filmRepository) Search(ctx context.Context, query string, by entity.SearchBy) ([]*entity.Film, error) {
	var conditions []string
	if by.Title {
		conditions = append(conditions, "f.name ILIKE $1")
	}
	if by.Director {
		conditions = append(conditions, `EXISTS (
			SELECT 1 FROM film_directors fd
			JOIN directors d ON d.id = fd.director_id
			WHERE fd.film_id = f.id AND d.name ILIKE $1)`)
	}
	if len(conditions) == 0 {
		return []*entity.Film{}, nil
	}

	sql := filmSelect + " WHERE " + strings.Join(conditions, " OR ") + filmGroupBy + orderByLikes
	return r.list(ctx, "search films", sql, likePattern(query))
}

func (r *filmRepository) FindCommon(ctx context.Context, userID, friendID int64) ([]*entity.Film, error) {
	query := filmSelect + commonLikeFilter + filmGroupBy + orderByLikes
	return r.list(ctx, "find common films", query, userID, friendID)
}

func (r *filmRepository) list(ctx context.Context, op, query string, args ...any) ([]*entity.Film, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+op, zap.Error(err))
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	defer rows.Close()

	films := []*entity.Film{}
	for rows.Next() {
		film, err := scanFilm(rows)
		if err != nil {
			r.log.Error("Failed to scan film row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan film: %w", err)
		}
		films = append(films, film)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Films found", zap.String("op", op), zap.Int("count", len(films)))
	return films, nil
}

func scanFilm(row pgx.Row) (*entity.Film, error) {
	var film entity.Film
	err := row.Scan(
		&film.ID,
		&film.Name,
		&film.Description,
		&film.ReleaseDate,
		&film.Duration,
		&film.MPA.ID,
		&film.MPA.Name,
		&film.Likes,
	)
	if err != nil {
		return nil, err
	}
	return &film, nil
}

// likePattern turns user input into a substring ILIKE pattern.
func likePattern(query string) string {
	escaper := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + escaper.Replace(query) + "%"
}
