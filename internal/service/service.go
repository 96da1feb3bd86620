package service

import (
	"blogplatform/internal/config"
	"blogplatform/internal/database"
	"blogplatform/internal/repository"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Post     PostService
	Comment  CommentService
	Favorite FavoriteService
	Stats    StatsService
}

func NewService(rep *repository.Repository, cfg *config.Config, db *database.DB) *Service {
	return &Service{
		Auth:     NewAuthService(rep.User),
		User:     NewUserService(rep.User),
		Post:     NewPostService(rep.Post, rep.Comment, cfg),
		Comment:  NewCommentService(rep.Comment, rep.Post),
		Favorite: NewFavoriteService(rep.Favorite, rep.Post),
		Stats:    NewStatsService(db),
	}
}
