package service

import (
	"context"

	"blogplatform/internal/models"
	"blogplatform/internal/repository"
)

type UserService interface {
	GetUser(ctx context.Context, userID int) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int, username, email string) (*models.User, error)
	SearchUsers(ctx context.Context, query string) ([]models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(ctx context.Context, userID int) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID int, username, email string) (*models.User, error) {
	user, err := s.userRepo.UpdateUser(ctx, userID, username, email)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	return s.userRepo.SearchUsers(ctx, query)
}
