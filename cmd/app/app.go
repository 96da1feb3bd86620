package app

import (
	"blogplatform/internal/config"
	"blogplatform/internal/database"
	"blogplatform/internal/repository"
	"blogplatform/internal/service"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// the in-memory database with the seeded admin
	db := database.OpenDB(cfg)

	// enabling dependencies
	repo := repository.NewRepository(db)

	services := service.NewService(repo, cfg, db)

	return db, repo, services
}
