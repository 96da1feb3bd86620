package service

import (
	"blogplatform/internal/database"
)

type Stats struct {
	Users     int `json:"users"`
	Posts     int `json:"posts"`
	Comments  int `json:"comments"`
	Favorites int `json:"favorites"`
}

type StatsService interface {
	GetCounts() (Stats, error)
}

type statsService struct {
	db *database.DB
}

func NewStatsService(db *database.DB) StatsService {
	return &statsService{db: db}
}

func (s *statsService) GetCounts() (Stats, error) {
	if err := s.db.HealthCheck(); err != nil {
		return Stats{}, err
	}

	users, posts, comments, favorites := s.db.Counts()

	return Stats{
		Users:     users,
		Posts:     posts,
		Comments:  comments,
		Favorites: favorites,
	}, nil
}
