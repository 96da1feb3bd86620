package service

import (
	"context"
	"fmt"

	"blogplatform/internal/models"
	"blogplatform/internal/repository"
)

type FavoriteService interface {
	AddFavorite(ctx context.Context, userID, postID int) error
	RemoveFavorite(ctx context.Context, userID, postID int) error
	ListFavorites(ctx context.Context, userID int) ([]models.Post, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	postRepo     repository.PostRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, postRepo repository.PostRepository) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		postRepo:     postRepo,
	}
}

func (s *favoriteService) AddFavorite(ctx context.Context, userID, postID int) error {
	return s.favoriteRepo.Add(ctx, userID, postID)
}

// RemoveFavorite rejects unknown post ids before pruning, so both
// favorite and unfavorite answer 404 for a missing post.
func (s *favoriteService) RemoveFavorite(ctx context.Context, userID, postID int) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return fmt.Errorf("нельзя убрать из избранного: %w", err)
	}

	return s.favoriteRepo.Remove(ctx, userID, postID)
}

func (s *favoriteService) ListFavorites(ctx context.Context, userID int) ([]models.Post, error) {
	return s.favoriteRepo.GetPosts(ctx, userID)
}
