package service

import (
	"context"

	"blogplatform/internal/models"
	"blogplatform/internal/repository"
)

type CommentService interface {
	AddComment(ctx context.Context, postID int, author, text string) (*models.Comment, error)
	ListComments(ctx context.Context, postID int) ([]models.Comment, error)
	GroupComments(ctx context.Context) (map[int][]models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *commentService) AddComment(ctx context.Context, postID int, author, text string) (*models.Comment, error) {
	return s.commentRepo.Create(ctx, postID, author, text)
}

func (s *commentService) ListComments(ctx context.Context, postID int) ([]models.Comment, error) {
	return s.commentRepo.GetByPostID(ctx, postID)
}

func (s *commentService) GroupComments(ctx context.Context) (map[int][]models.Comment, error) {
	return s.commentRepo.GroupByPost(ctx)
}
