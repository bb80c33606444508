package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Rutuja303/contentforge/internal/models"
	"github.com/Rutuja303/contentforge/internal/repository"
	"github.com/Rutuja303/contentforge/internal/transfer"
	"github.com/Rutuja303/contentforge/pkg/utils"
)

type AuthService interface {
	Register(ctx context.Context, req *transfer.RegisterRequest) (int64, error)
	Login(ctx context.Context, req *transfer.LoginRequest) (int64, error)
	GetUser(ctx context.Context, userID int64) (*models.User, error)
}

type authService struct {
	u repository.UserRepository
}

func NewAuthService(u repository.UserRepository) AuthService {
	return &authService{u: u}
}

func (s *authService) Register(ctx context.Context, req *transfer.RegisterRequest) (int64, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return 0, fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	if len(req.Password) < 8 {
		return 0, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}

	_, exists, err := s.u.GetByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
		Role:         models.RoleUser,
		IsActive:     true,
	}
	return s.u.Create(ctx, &user)
}

func (s *authService) Login(ctx context.Context, req *transfer.LoginRequest) (int64, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, exists, err := s.u.GetByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if !exists || !user.IsActive {
		return 0, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}
	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return 0, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}
	return user.ID, nil
}

func (s *authService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	user, exists, err := s.u.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}
	return user, nil
}
