package service

import (
	"context"

	"blogplatform/internal/config"
	"blogplatform/internal/models"
	"blogplatform/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, title, content string, userID int) (*models.Post, error)
	GetPost(ctx context.Context, postID int) (*models.Post, error)
	ListPosts(ctx context.Context, page, limit, userID int) ([]models.Post, error)
	UpdatePost(ctx context.Context, postID int, title, content string) (*models.Post, error)
	DeletePost(ctx context.Context, postID int) error
	SearchPosts(ctx context.Context, query string, page, limit int) ([]models.Post, error)
	HomePage(ctx context.Context, query string, page int) (*HomePage, error)
}

// HomePage carries everything the index template renders
type HomePage struct {
	Posts          []models.Post
	CommentsByPost map[int][]models.Comment
	Query          string
	Page           int
	TotalPages     int
}

type postService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	cfg         *config.Config
}

func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, cfg *config.Config) PostService {
	return &postService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		cfg:         cfg,
	}
}

func (s *postService) CreatePost(ctx context.Context, title, content string, userID int) (*models.Post, error) {
	return s.postRepo.Create(ctx, title, content, userID)
}

func (s *postService) GetPost(ctx context.Context, postID int) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

func (s *postService) ListPosts(ctx context.Context, page, limit, userID int) ([]models.Post, error) {
	return s.postRepo.List(ctx, page, limit, userID)
}

func (s *postService) UpdatePost(ctx context.Context, postID int, title, content string) (*models.Post, error) {
	return s.postRepo.Update(ctx, postID, title, content)
}

func (s *postService) DeletePost(ctx context.Context, postID int) error {
	return s.postRepo.Delete(ctx, postID)
}

func (s *postService) SearchPosts(ctx context.Context, query string, page, limit int) ([]models.Post, error) {
	return s.postRepo.Search(ctx, query, page, limit)
}

// HomePage filters the full post set by the query before pagination
// is applied, then slices out one page of cfg.HomePerPage posts.
func (s *postService) HomePage(ctx context.Context, query string, page int) (*HomePage, error) {
	filtered, err := s.postRepo.Filter(ctx, query)
	if err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}

	grouped, err := s.commentRepo.GroupByPost(ctx)
	if err != nil {
		return nil, err
	}

	return &HomePage{
		Posts:          repository.PaginatePosts(filtered, page, s.cfg.HomePerPage),
		CommentsByPost: grouped,
		Query:          query,
		Page:           page,
		TotalPages:     repository.TotalPages(len(filtered), s.cfg.HomePerPage),
	}, nil
}
