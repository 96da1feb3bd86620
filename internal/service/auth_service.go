package service

import (
	"context"
	"fmt"

	"blogplatform/internal/models"
	"blogplatform/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	user, err := s.userRepo.CreateUser(ctx, username, email, password)
	if err != nil {
		return nil, fmt.Errorf("ошибка при регистрации: %w", err)
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("ошибка аутентификации: %w", err)
	}

	return user, nil
}
