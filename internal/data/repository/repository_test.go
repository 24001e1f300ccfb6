package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"filmorate/internal/data/entity"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestLikeRepository_Add(t *testing.T) {
	mock := newMock(t)
	repo := NewLikeRepository(mock, zap.NewNop())
	query := regexp.QuoteMeta("INSERT INTO film_likes (film_id, user_id)")

	mock.ExpectExec(query).WithArgs(int64(1), int64(2)).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(query).WithArgs(int64(1), int64(2)).WillReturnResult(pgxmock.NewResult("INSERT", 0))

	added, err := repo.Add(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.Add(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.False(t, added)
}

func TestLikeRepository_FindAllByUser(t *testing.T) {
	mock := newMock(t)
	repo := NewLikeRepository(mock, zap.NewNop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, film_id FROM film_likes")).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "film_id"}).
			AddRow(int64(1), int64(10)).
			AddRow(int64(1), int64(11)).
			AddRow(int64(2), int64(10)))

	likes, err := repo.FindAllByUser(context.Background())
	require.NoError(t, err)
	assert.Len(t, likes[1], 2)
	assert.Contains(t, likes[2], int64(10))
}

func TestFriendshipRepository_Remove(t *testing.T) {
	mock := newMock(t)
	repo := NewFriendshipRepository(mock, zap.NewNop())
	query := regexp.QuoteMeta("DELETE FROM user_friendships WHERE user_id = $1 AND friend_id = $2")

	mock.ExpectExec(query).WithArgs(int64(1), int64(2)).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(query).WithArgs(int64(1), int64(3)).WillReturnError(errors.New("connection reset"))

	removed, err := repo.Remove(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = repo.Remove(context.Background(), 1, 3)
	assert.Error(t, err)
}

func TestFilmRepository_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		repo := NewFilmRepository(mock, zap.NewNop())
		released := time.Date(1979, 5, 25, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE f.id = $1 GROUP BY f.id, m.id")).
			WithArgs(int64(5)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "release_date", "duration", "id", "name", "likes"}).
				AddRow(int64(5), "Alien", "In space", released, 117, int64(4), "R", 3))

		film, err := repo.FindByID(context.Background(), 5)
		require.NoError(t, err)
		require.NotNil(t, film)
		assert.Equal(t, "Alien", film.Name)
		assert.Equal(t, entity.MPA{ID: 4, Name: "R"}, film.MPA)
		assert.Equal(t, 3, film.Likes)
	})

	t.Run("missing", func(t *testing.T) {
		mock := newMock(t)
		repo := NewFilmRepository(mock, zap.NewNop())

		mock.ExpectQuery(regexp.QuoteMeta("WHERE f.id = $1")).
			WithArgs(int64(9)).
			WillReturnError(pgx.ErrNoRows)

		film, err := repo.FindByID(context.Background(), 9)
		require.NoError(t, err)
		assert.Nil(t, film)
	})
}

func TestFilmRepository_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewFilmRepository(mock, zap.NewNop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM films WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 9), ErrRecordNotFound)
}

func TestFilmRepository_FindPopularArguments(t *testing.T) {
	mock := newMock(t)
	repo := NewFilmRepository(mock, zap.NewNop())
	genreID := int64(2)
	year := 1999

	mock.ExpectQuery(regexp.QuoteMeta("fg.genre_id = $1) AND EXTRACT(YEAR FROM f.release_date) = $2")).
		WithArgs(genreID, year, 5).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "release_date", "duration", "id", "name", "likes"}))

	films, err := repo.FindPopular(context.Background(), entity.PopularFilter{Count: 5, GenreID: &genreID, Year: &year})
	require.NoError(t, err)
	assert.Empty(t, films)
}

func TestReviewRatingRepository_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewReviewRatingRepository(mock, zap.NewNop())
	dislike := false

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM review_ratings WHERE review_id = $1 AND user_id = $2 AND is_like = $3")).
		WithArgs(int64(1), int64(2), false).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM review_ratings WHERE review_id = $1 AND user_id = $2")).
		WithArgs(int64(1), int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	removed, err := repo.Delete(context.Background(), 1, 2, &dislike)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(context.Background(), 1, 3, nil)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestEventRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewEventRepository(mock, zap.NewNop())
	event := &entity.Event{
		UserID:    1,
		EventType: entity.EventTypeFriend,
		Operation: entity.OperationAdd,
		EntityID:  2,
		Timestamp: 1700000000000,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO events")).
		WithArgs(int64(1), entity.EventTypeFriend, entity.OperationAdd, int64(2), int64(1700000000000)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(12)))

	require.NoError(t, repo.Create(context.Background(), event))
	assert.Equal(t, int64(12), event.ID)
}

func TestFilmGenreRepository_CreateBatch(t *testing.T) {
	mock := newMock(t)
	repo := NewFilmGenreRepository(mock, zap.NewNop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO film_genres (film_id, genre_id) VALUES ($1, $2), ($3, $4) ON CONFLICT DO NOTHING")).
		WithArgs(int64(7), int64(1), int64(7), int64(3)).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))

	require.NoError(t, repo.CreateBatch(context.Background(), 7, []int64{1, 3}))
	// empty batch never reaches the database
	require.NoError(t, repo.CreateBatch(context.Background(), 7, nil))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%alien%", likePattern("alien"))
	assert.Equal(t, `%100\%\_sure%`, likePattern("100%_sure"))
}

func TestFilmRepository_Update(t *testing.T) {
	query := regexp.QuoteMeta("UPDATE films SET name = $2, description = $3, release_date = $4, duration = $5, mpa_id = $6 WHERE id = $1")
	released := time.Date(1986, 7, 18, 0, 0, 0, 0, time.UTC)
	film := &entity.Film{ID: 5, Name: "Aliens", Description: "Back in space", ReleaseDate: released, Duration: 137, MPA: entity.MPA{ID: 4}}

	t.Run("updated", func(t *testing.T) {
		mock := newMock(t)
		repo := NewFilmRepository(mock, zap.NewNop())

		mock.ExpectExec(query).
			WithArgs(int64(5), "Aliens", "Back in space", released, 137, int64(4)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.Update(context.Background(), film))
	})

	t.Run("missing", func(t *testing.T) {
		mock := newMock(t)
		repo := NewFilmRepository(mock, zap.NewNop())

		mock.ExpectExec(query).
			WithArgs(int64(5), "Aliens", "Back in space", released, 137, int64(4)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, repo.Update(context.Background(), film), ErrRecordNotFound)
	})
}

func TestFilmRepository_FindByIDsOrdersByLikes(t *testing.T) {
	mock := newMock(t)
	repo := NewFilmRepository(mock, zap.NewNop())
	released := time.Date(2001, 7, 20, 0, 0, 0, 0, time.UTC)
	ids := []int64{2, 3}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE f.id = ANY($1) GROUP BY f.id, m.id ORDER BY likes DESC, f.id ASC")).
		WithArgs(ids).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "release_date", "duration", "id", "name", "likes"}).
			AddRow(int64(3), "Spirited Away", "", released, 125, int64(1), "G", 4).
			AddRow(int64(2), "Totoro", "", released, 86, int64(1), "G", 1))

	films, err := repo.FindByIDs(context.Background(), ids)
	require.NoError(t, err)
	require.Len(t, films, 2)
	assert.Equal(t, int64(3), films[0].ID)
	assert.Equal(t, int64(2), films[1].ID)

	// no ids, no query
	films, err = repo.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, films)
}

func TestRepository_WithinTx(t *testing.T) {
	updateQuery := regexp.QuoteMeta("UPDATE films SET")
	clearGenres := regexp.QuoteMeta("DELETE FROM film_genres WHERE film_id = $1")
	linkGenres := regexp.QuoteMeta("INSERT INTO film_genres (film_id, genre_id)")
	film := &entity.Film{ID: 5, Name: "Aliens", MPA: entity.MPA{ID: 4}}

	replaceGenres := func(repo *Repository) error {
		if err := repo.Film.Update(context.Background(), film); err != nil {
			return err
		}
		if err := repo.FilmGenre.DeleteByFilmID(context.Background(), film.ID); err != nil {
			return err
		}
		return repo.FilmGenre.CreateBatch(context.Background(), film.ID, []int64{3})
	}

	t.Run("commits on success", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock, zap.NewNop())

		mock.ExpectBegin()
		mock.ExpectExec(updateQuery).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(clearGenres).WithArgs(int64(5)).WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectExec(linkGenres).WithArgs(int64(5), int64(3)).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Tx.WithinTx(context.Background(), replaceGenres))
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock, zap.NewNop())
		linkErr := errors.New("connection reset")

		mock.ExpectBegin()
		mock.ExpectExec(updateQuery).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(clearGenres).WithArgs(int64(5)).WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectExec(linkGenres).WithArgs(int64(5), int64(3)).WillReturnError(linkErr)
		mock.ExpectRollback()

		err := repo.Tx.WithinTx(context.Background(), replaceGenres)
		assert.ErrorIs(t, err, linkErr)
	})

	t.Run("begin failure", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock, zap.NewNop())

		mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		called := false
		err := repo.Tx.WithinTx(context.Background(), func(*Repository) error {
			called = true
			return nil
		})
		assert.ErrorContains(t, err, "begin transaction")
		assert.False(t, called)
	})
}
