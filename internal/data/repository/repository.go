package repository

import (
	"context"
	"errors"
	"fmt"

	"filmorate/pkg/database"

	"go.uber.org/zap"
)

// ErrRecordNotFound is returned by Update and Delete when no row matched.
var ErrRecordNotFound = errors.New("record not found")

type Repository struct {
	User         UserRepository
	Friendship   FriendshipRepository
	Film         FilmRepository
	FilmGenre    FilmGenreRepository
	FilmDirector FilmDirectorRepository
	Like         LikeRepository
	Genre        GenreRepository
	MPA          MPARepository
	Director     DirectorRepository
	Review       ReviewRepository
	ReviewRating ReviewRatingRepository
	Event        EventRepository

	Tx Transactor
}

// Transactor runs fn against repositories bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(repo *Repository) error) error
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	repo := newRepository(db, log)
	repo.Tx = &pgxTransactor{db: db, log: log}
	return repo
}

func newRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Friendship:   NewFriendshipRepository(db, log),
		Film:         NewFilmRepository(db, log),
		FilmGenre:    NewFilmGenreRepository(db, log),
		FilmDirector: NewFilmDirectorRepository(db, log),
		Like:         NewLikeRepository(db, log),
		Genre:        NewGenreRepository(db, log),
		MPA:          NewMPARepository(db, log),
		Director:     NewDirectorRepository(db, log),
		Review:       NewReviewRepository(db, log),
		ReviewRating: NewReviewRatingRepository(db, log),
		Event:        NewEventRepository(db, log),
	}
}

type pgxTransactor struct {
	db  database.PgxIface
	log *zap.Logger
}

func (t *pgxTransactor) WithinTx(ctx context.Context, fn func(repo *Repository) error) error {
	tx, err := t.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	txRepo := newRepository(database.NewTxDB(tx), t.log)
	txRepo.Tx = inTx{repo: txRepo}

	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			t.log.Error("Failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// inTx reuses the enclosing transaction for nested calls
type inTx struct {
	repo *Repository
}

func (t inTx) WithinTx(_ context.Context, fn func(repo *Repository) error) error {
	return fn(t.repo)
}
