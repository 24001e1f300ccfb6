package repository

import (
	"context"
	"filmorate/internal/data/entity"
	"filmorate/pkg/database"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MPARepository interface {
	FindAll(ctx context.Context) ([]entity.MPA, error)
	FindByID(ctx context.Context, id int64) (*entity.MPA, error)
}

type mpaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMPARepository(db database.PgxIface, log *zap.Logger) MPARepository {
	return &mpaRepository{
		db:  db,
		log: log.With(zap.String("repository", "mpa")),
	}
}

func (r *mpaRepository) FindAll(ctx context.Context) ([]entity.MPA, error) {
	query := `SELECT id, name FROM mpa_ratings ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all mpa ratings", zap.Error(err))
		return nil, fmt.Errorf("find all mpa ratings: %w", err)
	}
	defer rows.Close()

	ratings := []entity.MPA{}
	for rows.Next() {
		var mpa entity.MPA
		if err := rows.Scan(&mpa.ID, &mpa.Name); err != nil {
			r.log.Error("Failed to scan mpa row", zap.Error(err))
			return nil, fmt.Errorf("scan mpa row: %w", err)
		}
		ratings = append(ratings, mpa)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mpa rows: %w", err)
	}

	return ratings, nil
}

func (r *mpaRepository) FindByID(ctx context.Context, id int64) (*entity.MPA, error) {
	query := `SELECT id, name FROM mpa_ratings WHERE id = $1`

	var mpa entity.MPA
	err := r.db.QueryRow(ctx, query, id).Scan(&mpa.ID, &mpa.Name)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find mpa by ID",
			zap.Error(err),
			zap.Int64("mpa_id", id),
		)
		return nil, fmt.Errorf("find mpa by id: %w", err)
	}

	return &mpa, nil
}
