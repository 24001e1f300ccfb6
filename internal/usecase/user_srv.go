package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"filmorate/internal/data/entity"
	"filmorate/internal/data/repository"
	"filmorate/internal/dto/request"
	"filmorate/internal/dto/response"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const maxPasswordBytes = 72

type UserService interface {
	GetUsers(ctx context.Context) ([]response.UserResponse, error)
	GetUserByID(ctx context.Context, id int64) (*response.UserResponse, error)
	CreateUser(ctx context.Context, req *request.UserRequest) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, req *request.UserRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, id int64) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
		now:  time.Now,
	}
}

func (us *userService) GetUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := us.repo.User.FindAll(ctx)
	if err != nil {
		us.log.Error("Failed to get users", zap.Error(err))
		return nil, fmt.Errorf("get users: %w", err)
	}

	return response.UsersToResponse(users), nil
}

func (us *userService) GetUserByID(ctx context.Context, id int64) (*response.UserResponse, error) {
	user, err := requireUser(ctx, us.repo, id)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) CreateUser(ctx context.Context, req *request.UserRequest) (*response.UserResponse, error) {
	user, err := us.buildUser(req)
	if err != nil {
		return nil, err
	}

	if err := us.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	us.log.Info("User created",
		zap.Int64("user_id", user.ID),
		zap.String("login", user.Login),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

// UpdateUser replaces every field; the last writer wins
func (us *userService) UpdateUser(ctx context.Context, req *request.UserRequest) (*response.UserResponse, error) {
	if req.ID < 1 {
		return nil, validationError("id is required")
	}

	user, err := us.buildUser(req)
	if err != nil {
		return nil, err
	}
	user.ID = req.ID

	if err := us.repo.User.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, notFoundError("user %d not found", req.ID)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	us.log.Info("User updated", zap.Int64("user_id", user.ID))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := us.repo.User.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return notFoundError("user %d not found", id)
		}
		return fmt.Errorf("delete user: %w", err)
	}

	us.log.Info("User deleted", zap.Int64("user_id", id))
	return nil
}

func (us *userService) buildUser(req *request.UserRequest) (*entity.User, error) {
	// email format and login whitespace are checked by the request tags
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	birthday, err := time.Parse("2006-01-02", req.Birthday)
	if err != nil {
		return nil, validationError("invalid birthday %q", req.Birthday)
	}
	if birthday.After(us.now()) {
		return nil, validationError("birthday must not be in the future")
	}

	// Name defaults to login
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = req.Login
	}

	user := &entity.User{
		Email:    req.Email,
		Login:    req.Login,
		Name:     name,
		Birthday: birthday,
	}

	if req.Password != nil {
		// bcrypt limits input by bytes, the validator counts characters
		if len(*req.Password) > maxPasswordBytes {
			return nil, validationError("password must not exceed %d bytes", maxPasswordBytes)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hashed := string(hash)
		user.PasswordHash = &hashed
	}

	return user, nil
}
