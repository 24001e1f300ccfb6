package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"filmorate/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestUserService(repo *fakeRepo) *userService {
	svc := NewUserService(repo.Repository, zap.NewNop()).(*userService)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	return svc
}

func TestUserService_CreateUser(t *testing.T) {
	t.Run("blank name defaults to login", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestUserService(repo)

		user, err := svc.CreateUser(context.Background(), &request.UserRequest{
			Email:    "neo@example.com",
			Login:    "neo",
			Name:     "  ",
			Birthday: "1990-01-01",
		})

		require.NoError(t, err)
		assert.Equal(t, "neo", user.Name)
		assert.Equal(t, "1990-01-01", user.Birthday)
		assert.NotZero(t, user.ID)
	})

	t.Run("future birthday is rejected", func(t *testing.T) {
		svc := newTestUserService(newFakeRepo())

		_, err := svc.CreateUser(context.Background(), &request.UserRequest{
			Email:    "neo@example.com",
			Login:    "neo",
			Birthday: "2030-01-01",
		})

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("login with spaces is rejected", func(t *testing.T) {
		svc := newTestUserService(newFakeRepo())

		_, err := svc.CreateUser(context.Background(), &request.UserRequest{
			Email:    "neo@example.com",
			Login:    "the one",
			Birthday: "1990-01-01",
		})

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("password is stored as bcrypt hash", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestUserService(repo)
		password := "redpill42"

		user, err := svc.CreateUser(context.Background(), &request.UserRequest{
			Email:    "neo@example.com",
			Login:    "neo",
			Birthday: "1990-01-01",
			Password: &password,
		})
		require.NoError(t, err)

		stored := repo.users.users[user.ID]
		require.NotNil(t, stored.PasswordHash)
		assert.NotEqual(t, password, *stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte(password)))
	})

	t.Run("multibyte password over 72 bytes is rejected", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestUserService(repo)
		// 40 characters, 80 bytes
		password := strings.Repeat("é", 40)

		_, err := svc.CreateUser(context.Background(), &request.UserRequest{
			Email:    "neo@example.com",
			Login:    "neo",
			Birthday: "1990-01-01",
			Password: &password,
		})
		assert.ErrorIs(t, err, ErrValidation)
		assert.Len(t, repo.users.users, 3)

		password = strings.Repeat("é", 36)
		_, err = svc.CreateUser(context.Background(), &request.UserRequest{
			Email:    "neo@example.com",
			Login:    "neo",
			Birthday: "1990-01-01",
			Password: &password,
		})
		assert.NoError(t, err)
	})
}

func TestUserService_UpdateAndDelete(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestUserService(repo)
	ctx := context.Background()

	_, err := svc.UpdateUser(ctx, &request.UserRequest{
		ID: 99, Email: "x@example.com", Login: "x", Birthday: "1990-01-01",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateUser(ctx, &request.UserRequest{
		Email: "x@example.com", Login: "x", Birthday: "1990-01-01",
	})
	assert.ErrorIs(t, err, ErrValidation)

	updated, err := svc.UpdateUser(ctx, &request.UserRequest{
		ID: 1, Email: "trinity@example.com", Login: "trinity", Name: "Trinity", Birthday: "1985-03-03",
	})
	require.NoError(t, err)
	assert.Equal(t, "Trinity", updated.Name)
	assert.Equal(t, "trinity", repo.users.users[1].Login)

	require.NoError(t, svc.DeleteUser(ctx, 1))
	assert.ErrorIs(t, svc.DeleteUser(ctx, 1), ErrNotFound)

	_, err = svc.GetUserByID(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
