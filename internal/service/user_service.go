package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/rohanvs/tasklink/internal/apperr"
	"github.com/rohanvs/tasklink/internal/auth"
	usermodel "github.com/rohanvs/tasklink/internal/models/user"
	"github.com/rohanvs/tasklink/internal/storage"
	"github.com/rohanvs/tasklink/internal/validation"
)

type UserService struct {
	users      storage.UserStore
	jwtManager *auth.JWTManager
}

func NewUserService(users storage.UserStore, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		users:      users,
		jwtManager: jwtManager,
	}
}

func (s *UserService) Register(ctx context.Context, email, password string) (*usermodel.PublicUser, error) {
	email = validation.NormalizeEmail(email)
	if err := validation.ValidateEmail(email); err != nil {
		return nil, apperr.New(apperr.Validation, err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, apperr.New(apperr.Validation, err.Error())
	}

	existing, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, apperr.New(apperr.Persistence, "signing up failed, please try again later")
	}
	if existing != nil {
		return nil, apperr.New(apperr.Conflict, "user exists already, please login instead")
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperr.New(apperr.Crypto, "could not create user, please try again")
	}

	created, err := s.users.CreateUser(ctx, email, passwordHash)
	if err != nil {
		// The unique constraint is the source of truth: a duplicate that
		// slipped past the pre-check reports the same conflict.
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, apperr.New(apperr.Conflict, "user exists already, please login instead")
		}
		return nil, apperr.New(apperr.Persistence, "signing up failed, please try again later")
	}

	return &usermodel.PublicUser{
		ID:    created.ID,
		Email: created.Email,
	}, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*usermodel.LoginResponse, error) {
	email = validation.NormalizeEmail(email)

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, apperr.New(apperr.Persistence, "logging in failed, please try again later")
	}
	if user == nil {
		return nil, apperr.WithStatus(apperr.Authentication,
			"invalid credentials, could not log you in", http.StatusUnauthorized)
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, apperr.WithStatus(apperr.Authentication,
			"invalid credentials, could not log you in", http.StatusUnauthorized)
	}

	token, expiresAt, err := s.jwtManager.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, apperr.New(apperr.Crypto, "logging in failed, please try again later")
	}

	return &usermodel.LoginResponse{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// GetUsers returns every user with the password hash redacted.
func (s *UserService) GetUsers(ctx context.Context) ([]usermodel.PublicUser, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, apperr.New(apperr.Persistence, "fetching users failed, please try again later")
	}

	out := make([]usermodel.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, usermodel.PublicUser{
			ID:    u.ID,
			Email: u.Email,
			Tasks: u.Tasks,
		})
	}
	return out, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*usermodel.PublicUser, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperr.New(apperr.Persistence, "fetching user failed, please try again later")
	}
	if user == nil {
		return nil, apperr.New(apperr.NotFound, "user not found for the provided id")
	}

	return &usermodel.PublicUser{
		ID:    user.ID,
		Email: user.Email,
	}, nil
}
