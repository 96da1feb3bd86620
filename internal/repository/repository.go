package repository

import (
	"context"

	"blogplatform/internal/database"
	"blogplatform/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, username, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, userID int) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateUser(ctx context.Context, userID int, username, email string) (*models.User, error)
	SearchUsers(ctx context.Context, query string) ([]models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, title, content string, userID int) (*models.Post, error)
	GetByID(ctx context.Context, postID int) (*models.Post, error)
	List(ctx context.Context, page, limit, userID int) ([]models.Post, error)
	Update(ctx context.Context, postID int, title, content string) (*models.Post, error)
	Delete(ctx context.Context, postID int) error
	Search(ctx context.Context, query string, page, limit int) ([]models.Post, error)
	Filter(ctx context.Context, query string) ([]models.Post, error)
	Count(ctx context.Context) (int, error)
}

type CommentRepository interface {
	Create(ctx context.Context, postID int, author, text string) (*models.Comment, error)
	GetByPostID(ctx context.Context, postID int) ([]models.Comment, error)
	GroupByPost(ctx context.Context) (map[int][]models.Comment, error)
}

type FavoriteRepository interface {
	Add(ctx context.Context, userID, postID int) error
	Remove(ctx context.Context, userID, postID int) error
	GetPosts(ctx context.Context, userID int) ([]models.Post, error)
	Contains(ctx context.Context, userID, postID int) bool
}

type Repository struct {
	User     UserRepository
	Post     PostRepository
	Comment  CommentRepository
	Favorite FavoriteRepository
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{
		User:     NewUserRepository(db),
		Post:     NewPostRepository(db),
		Comment:  NewCommentRepository(db),
		Favorite: NewFavoriteRepository(db),
	}
}
