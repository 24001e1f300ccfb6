package usecase

import (
	"context"
	"sort"

	"filmorate/internal/data/entity"
	"filmorate/internal/data/repository"
)

// Each fake embeds its interface so unexercised methods panic when called.

type fakeUsers struct {
	repository.UserRepository
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUsers(ids ...int64) *fakeUsers {
	f := &fakeUsers{users: map[int64]*entity.User{}}
	for _, id := range ids {
		f.users[id] = &entity.User{ID: id, Login: "user", Name: "user"}
		if id > f.nextID {
			f.nextID = id
		}
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, user *entity.User) error {
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUsers) FindByID(_ context.Context, id int64) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUsers) Update(_ context.Context, user *entity.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return repository.ErrRecordNotFound
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUsers) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeFriendships struct {
	repository.FriendshipRepository
	edges map[[2]int64]bool
}

func (f *fakeFriendships) Add(_ context.Context, userID, friendID int64) (bool, error) {
	key := [2]int64{userID, friendID}
	if f.edges[key] {
		return false, nil
	}
	f.edges[key] = true
	return true, nil
}

func (f *fakeFriendships) Remove(_ context.Context, userID, friendID int64) (bool, error) {
	key := [2]int64{userID, friendID}
	if !f.edges[key] {
		return false, nil
	}
	delete(f.edges, key)
	return true, nil
}

type fakeFilms struct {
	repository.FilmRepository
	films  map[int64]*entity.Film
	nextID int64
}

func (f *fakeFilms) Create(_ context.Context, film *entity.Film) error {
	f.nextID++
	film.ID = f.nextID
	stored := *film
	f.films[film.ID] = &stored
	return nil
}

func (f *fakeFilms) FindByID(_ context.Context, id int64) (*entity.Film, error) {
	film, ok := f.films[id]
	if !ok {
		return nil, nil
	}
	copied := *film
	return &copied, nil
}

func (f *fakeFilms) FindByIDs(_ context.Context, ids []int64) ([]*entity.Film, error) {
	films := []*entity.Film{}
	for _, id := range ids {
		if film, ok := f.films[id]; ok {
			copied := *film
			films = append(films, &copied)
		}
	}
	sort.Slice(films, func(i, j int) bool {
		if films[i].Likes != films[j].Likes {
			return films[i].Likes > films[j].Likes
		}
		return films[i].ID < films[j].ID
	})
	return films, nil
}

func (f *fakeFilms) Update(_ context.Context, film *entity.Film) error {
	if _, ok := f.films[film.ID]; !ok {
		return repository.ErrRecordNotFound
	}
	stored := *film
	f.films[film.ID] = &stored
	return nil
}

func (f *fakeFilms) Delete(_ context.Context, id int64) error {
	if _, ok := f.films[id]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(f.films, id)
	return nil
}

type fakeLinks struct {
	links map[int64][]int64
	err   error
}

func (f *fakeLinks) CreateBatch(_ context.Context, filmID int64, ids []int64) error {
	if f.err != nil {
		return f.err
	}
	f.links[filmID] = append(f.links[filmID], ids...)
	return nil
}

func (f *fakeLinks) DeleteByFilmID(_ context.Context, filmID int64) error {
	delete(f.links, filmID)
	return nil
}

func (f *fakeLinks) snapshot() map[int64][]int64 {
	copied := make(map[int64][]int64, len(f.links))
	for filmID, ids := range f.links {
		copied[filmID] = append([]int64(nil), ids...)
	}
	return copied
}

type fakeFilmGenres struct{ fakeLinks }

func (f *fakeFilmGenres) FindByFilmIDs(_ context.Context, filmIDs []int64) (map[int64][]entity.Genre, error) {
	result := map[int64][]entity.Genre{}
	for _, filmID := range filmIDs {
		for _, id := range f.links[filmID] {
			result[filmID] = append(result[filmID], entity.Genre{ID: id})
		}
	}
	return result, nil
}

type fakeFilmDirectors struct{ fakeLinks }

func (f *fakeFilmDirectors) FindByFilmIDs(_ context.Context, filmIDs []int64) (map[int64][]entity.Director, error) {
	result := map[int64][]entity.Director{}
	for _, filmID := range filmIDs {
		for _, id := range f.links[filmID] {
			result[filmID] = append(result[filmID], entity.Director{ID: id})
		}
	}
	return result, nil
}

type fakeLikes struct {
	repository.LikeRepository
	likes map[int64]map[int64]struct{} // user -> films
}

func (f *fakeLikes) Add(_ context.Context, filmID, userID int64) (bool, error) {
	if f.likes[userID] == nil {
		f.likes[userID] = map[int64]struct{}{}
	}
	if _, ok := f.likes[userID][filmID]; ok {
		return false, nil
	}
	f.likes[userID][filmID] = struct{}{}
	return true, nil
}

func (f *fakeLikes) Remove(_ context.Context, filmID, userID int64) (bool, error) {
	if _, ok := f.likes[userID][filmID]; !ok {
		return false, nil
	}
	delete(f.likes[userID], filmID)
	return true, nil
}

func (f *fakeLikes) FindAllByUser(context.Context) (map[int64]map[int64]struct{}, error) {
	return f.likes, nil
}

type fakeGenres struct {
	repository.GenreRepository
	genres map[int64]entity.Genre
	calls  int
}

func (f *fakeGenres) FindAll(context.Context) ([]entity.Genre, error) {
	f.calls++
	genres := make([]entity.Genre, 0, len(f.genres))
	for _, genre := range f.genres {
		genres = append(genres, genre)
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].ID < genres[j].ID })
	return genres, nil
}

func (f *fakeGenres) FindByID(_ context.Context, id int64) (*entity.Genre, error) {
	f.calls++
	genre, ok := f.genres[id]
	if !ok {
		return nil, nil
	}
	return &genre, nil
}

func (f *fakeGenres) FindByIDs(_ context.Context, ids []int64) ([]entity.Genre, error) {
	genres := []entity.Genre{}
	for _, id := range ids {
		if genre, ok := f.genres[id]; ok {
			genres = append(genres, genre)
		}
	}
	return genres, nil
}

type fakeMPA struct {
	repository.MPARepository
	ratings map[int64]entity.MPA
}

func (f *fakeMPA) FindByID(_ context.Context, id int64) (*entity.MPA, error) {
	mpa, ok := f.ratings[id]
	if !ok {
		return nil, nil
	}
	return &mpa, nil
}

type fakeDirectors struct {
	repository.DirectorRepository
	directors map[int64]entity.Director
}

func (f *fakeDirectors) FindByID(_ context.Context, id int64) (*entity.Director, error) {
	director, ok := f.directors[id]
	if !ok {
		return nil, nil
	}
	return &director, nil
}

func (f *fakeDirectors) FindByIDs(_ context.Context, ids []int64) ([]entity.Director, error) {
	directors := []entity.Director{}
	for _, id := range ids {
		if director, ok := f.directors[id]; ok {
			directors = append(directors, director)
		}
	}
	return directors, nil
}

type fakeReviews struct {
	repository.ReviewRepository
	reviews map[int64]*entity.Review
	nextID  int64
}

func (f *fakeReviews) Create(_ context.Context, review *entity.Review) error {
	f.nextID++
	review.ID = f.nextID
	stored := *review
	f.reviews[review.ID] = &stored
	return nil
}

func (f *fakeReviews) FindByID(_ context.Context, id int64) (*entity.Review, error) {
	review, ok := f.reviews[id]
	if !ok {
		return nil, nil
	}
	copied := *review
	return &copied, nil
}

func (f *fakeReviews) Update(_ context.Context, review *entity.Review) error {
	stored, ok := f.reviews[review.ID]
	if !ok {
		return repository.ErrRecordNotFound
	}
	stored.Content = review.Content
	stored.IsPositive = review.IsPositive
	return nil
}

func (f *fakeReviews) Delete(_ context.Context, id int64) error {
	if _, ok := f.reviews[id]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(f.reviews, id)
	return nil
}

type ratingCall struct {
	reviewID, userID int64
	isLike           *bool
}

type fakeReviewRatings struct {
	repository.ReviewRatingRepository
	ratings map[[2]int64]bool
	deletes []ratingCall
}

func (f *fakeReviewRatings) Upsert(_ context.Context, reviewID, userID int64, isLike bool) error {
	f.ratings[[2]int64{reviewID, userID}] = isLike
	return nil
}

func (f *fakeReviewRatings) Delete(_ context.Context, reviewID, userID int64, isLike *bool) (bool, error) {
	f.deletes = append(f.deletes, ratingCall{reviewID, userID, isLike})
	key := [2]int64{reviewID, userID}
	current, ok := f.ratings[key]
	if !ok || (isLike != nil && current != *isLike) {
		return false, nil
	}
	delete(f.ratings, key)
	return true, nil
}

type fakeEvents struct {
	repository.EventRepository
	events []*entity.Event
}

func (f *fakeEvents) Create(_ context.Context, event *entity.Event) error {
	event.ID = int64(len(f.events) + 1)
	f.events = append(f.events, event)
	return nil
}

func (f *fakeEvents) FindByUserID(_ context.Context, userID int64) ([]*entity.Event, error) {
	var events []*entity.Event
	for _, event := range f.events {
		if event.UserID == userID {
			events = append(events, event)
		}
	}
	return events, nil
}

// fakeTx restores films and film links when the transaction body fails
type fakeTx struct {
	repo *fakeRepo
}

func (t fakeTx) WithinTx(_ context.Context, fn func(repo *repository.Repository) error) error {
	films := make(map[int64]*entity.Film, len(t.repo.films.films))
	for id, film := range t.repo.films.films {
		films[id] = film
	}
	nextID := t.repo.films.nextID
	genres := t.repo.filmGenres.snapshot()
	directors := t.repo.filmDirector.snapshot()

	if err := fn(t.repo.Repository); err != nil {
		t.repo.films.films = films
		t.repo.films.nextID = nextID
		t.repo.filmGenres.links = genres
		t.repo.filmDirector.links = directors
		return err
	}
	return nil
}

type fakeRepo struct {
	*repository.Repository
	users        *fakeUsers
	friendships  *fakeFriendships
	films        *fakeFilms
	filmGenres   *fakeFilmGenres
	filmDirector *fakeFilmDirectors
	likes        *fakeLikes
	genres       *fakeGenres
	reviews      *fakeReviews
	ratings      *fakeReviewRatings
	events       *fakeEvents
}

// newFakeRepo seeds users 1..3, MPA 1..2, genres 1..3 and directors 1..2
func newFakeRepo() *fakeRepo {
	f := &fakeRepo{
		users:        newFakeUsers(1, 2, 3),
		friendships:  &fakeFriendships{edges: map[[2]int64]bool{}},
		films:        &fakeFilms{films: map[int64]*entity.Film{}},
		filmGenres:   &fakeFilmGenres{fakeLinks{links: map[int64][]int64{}}},
		filmDirector: &fakeFilmDirectors{fakeLinks{links: map[int64][]int64{}}},
		likes:        &fakeLikes{likes: map[int64]map[int64]struct{}{}},
		genres: &fakeGenres{genres: map[int64]entity.Genre{
			1: {ID: 1, Name: "Comedy"},
			2: {ID: 2, Name: "Drama"},
			3: {ID: 3, Name: "Cartoon"},
		}},
		reviews: &fakeReviews{reviews: map[int64]*entity.Review{}},
		ratings: &fakeReviewRatings{ratings: map[[2]int64]bool{}},
		events:  &fakeEvents{},
	}

	f.Repository = &repository.Repository{
		User:         f.users,
		Friendship:   f.friendships,
		Film:         f.films,
		FilmGenre:    f.filmGenres,
		FilmDirector: f.filmDirector,
		Like:         f.likes,
		Genre:        f.genres,
		MPA: &fakeMPA{ratings: map[int64]entity.MPA{
			1: {ID: 1, Name: "G"},
			2: {ID: 2, Name: "PG"},
		}},
		Director: &fakeDirectors{directors: map[int64]entity.Director{
			1: {ID: 1, Name: "Hayao Miyazaki"},
			2: {ID: 2, Name: "Isao Takahata"},
		}},
		Review:       f.reviews,
		ReviewRating: f.ratings,
		Event:        f.events,
	}
	f.Repository.Tx = fakeTx{repo: f}
	return f
}
