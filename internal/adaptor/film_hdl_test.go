package adaptor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"filmorate/internal/dto/request"
	"filmorate/internal/dto/response"
	"filmorate/internal/usecase"
	"filmorate/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFilmService struct {
	usecase.FilmService
	err     error
	created *request.FilmRequest
	popular request.PopularRequest
}

func (s *stubFilmService) GetFilmByID(_ context.Context, id int64) (*response.FilmResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &response.FilmResponse{ID: id, Name: "Alien"}, nil
}

func (s *stubFilmService) CreateFilm(_ context.Context, req *request.FilmRequest) (*response.FilmResponse, error) {
	s.created = req
	if s.err != nil {
		return nil, s.err
	}
	return &response.FilmResponse{ID: 1, Name: req.Name}, nil
}

func (s *stubFilmService) GetPopular(_ context.Context, req request.PopularRequest) ([]response.FilmResponse, error) {
	s.popular = req
	return []response.FilmResponse{}, s.err
}

func (s *stubFilmService) AddLike(context.Context, int64, int64) error {
	return s.err
}

func newFilmRouter(svc usecase.FilmService) *chi.Mux {
	h := NewFilmHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/films/popular", h.GetPopular)
	r.Get("/films/{id}", h.GetFilmByID)
	r.Post("/films", h.CreateFilm)
	r.Put("/films/{id}/like/{userId}", h.AddLike)
	return r
}

func serve(t *testing.T, handler http.Handler, method, target, body string) (*httptest.ResponseRecorder, utils.Response) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestFilmHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "not found", err: fmt.Errorf("lookup: %w", usecase.ErrNotFound), code: http.StatusNotFound},
		{name: "validation", err: fmt.Errorf("%w: bad date", usecase.ErrValidation), code: http.StatusBadRequest},
		{name: "conflict", err: usecase.ErrConflict, code: http.StatusConflict},
		{name: "internal", err: errors.New("connection refused"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := serve(t, newFilmRouter(&stubFilmService{err: tt.err}), http.MethodGet, "/films/7", "")

			assert.Equal(t, tt.code, rec.Code)
			assert.False(t, resp.Status)
			if tt.code == http.StatusInternalServerError {
				// internal details stay in the logs
				assert.Equal(t, "Internal server error", resp.Message)
			}
		})
	}
}

func TestFilmHandler_GetFilmByID(t *testing.T) {
	router := newFilmRouter(&stubFilmService{})

	rec, resp := serve(t, router, http.MethodGet, "/films/7", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Status)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(7), data["id"])

	for _, id := range []string{"abc", "0", "-3"} {
		rec, _ = serve(t, router, http.MethodGet, "/films/"+id, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, id)
	}
}

func TestFilmHandler_CreateFilm(t *testing.T) {
	t.Run("valid body reaches the service", func(t *testing.T) {
		svc := &stubFilmService{}
		body := `{"name":"Alien","description":"In space","releaseDate":"1979-05-25","duration":117,"mpa":{"id":4},"genres":[{"id":4}]}`

		rec, resp := serve(t, newFilmRouter(svc), http.MethodPost, "/films", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, resp.Status)
		require.NotNil(t, svc.created)
		assert.Equal(t, int64(4), svc.created.MPA.ID)
		assert.Equal(t, []request.IDRef{{ID: 4}}, svc.created.Genres)
	})

	t.Run("invalid fields are reported by json name", func(t *testing.T) {
		svc := &stubFilmService{}
		body := `{"name":"  ","releaseDate":"25.05.1979","duration":0}`

		rec, resp := serve(t, newFilmRouter(svc), http.MethodPost, "/films", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, svc.created)

		fields, ok := resp.Errors.(map[string]any)
		require.True(t, ok)
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "releaseDate")
		assert.Contains(t, fields, "duration")
		assert.Contains(t, fields, "mpa")
	})

	t.Run("malformed json", func(t *testing.T) {
		rec, _ := serve(t, newFilmRouter(&stubFilmService{}), http.MethodPost, "/films", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("long description", func(t *testing.T) {
		svc := &stubFilmService{}
		body := fmt.Sprintf(`{"name":"Alien","description":%q,"releaseDate":"1979-05-25","duration":117,"mpa":{"id":1}}`,
			strings.Repeat("x", 201))

		rec, _ := serve(t, newFilmRouter(svc), http.MethodPost, "/films", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, svc.created)
	})
}

func TestFilmHandler_GetPopular(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		svc := &stubFilmService{}
		rec, _ := serve(t, newFilmRouter(svc), http.MethodGet, "/films/popular", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, defaultPopularCount, svc.popular.Count)
		assert.Nil(t, svc.popular.GenreID)
		assert.Nil(t, svc.popular.Year)
	})

	t.Run("filters", func(t *testing.T) {
		svc := &stubFilmService{}
		rec, _ := serve(t, newFilmRouter(svc), http.MethodGet, "/films/popular?count=3&genreId=2&year=1999", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 3, svc.popular.Count)
		require.NotNil(t, svc.popular.GenreID)
		assert.Equal(t, int64(2), *svc.popular.GenreID)
		require.NotNil(t, svc.popular.Year)
		assert.Equal(t, 1999, *svc.popular.Year)
	})

	t.Run("bad count", func(t *testing.T) {
		rec, _ := serve(t, newFilmRouter(&stubFilmService{}), http.MethodGet, "/films/popular?count=ten", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFilmHandler_AddLike(t *testing.T) {
	rec, resp := serve(t, newFilmRouter(&stubFilmService{}), http.MethodPut, "/films/3/like/5", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Status)

	rec, resp = serve(t, newFilmRouter(&stubFilmService{}), http.MethodPut, "/films/3/like/x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Errors, "userId")
}
