package repository

import (
	"blogplatform/internal/config"
	"blogplatform/internal/database"
)

// newTestDB seeds the same admin the process starts with (id 1)
func newTestDB() *database.DB {
	cfg := &config.Config{
		Admin: config.Admin{
			Username: "admin",
			Email:    "admin@test.com",
			Password: "123",
		},
	}
	return database.OpenDB(cfg)
}
