package database

import (
	"fmt"
	"sync"

	"blogplatform/internal/config"
	"blogplatform/internal/models"
)

// DB - "фейковая база данных": срезы и отображения в памяти процесса.
// Все мутации выполняются под Mu, каскадные удаления атомарны.
type DB struct {
	Mu sync.Mutex

	Users     []models.User
	Posts     []models.Post
	Comments  []models.Comment
	Favorites map[int][]int

	userSeq    int
	postSeq    int
	commentSeq int
}

// OpenDB creates the in-memory database and seeds the admin user (id 1)
func OpenDB(cfg *config.Config) *DB {
	db := &DB{
		Favorites: make(map[int][]int),
	}

	db.Users = append(db.Users, models.User{
		ID:       db.NextUserID(),
		Username: cfg.Admin.Username,
		Email:    cfg.Admin.Email,
		Role:     models.RoleAdmin,
		Password: cfg.Admin.Password,
	})

	return db
}

// NextUserID must be called with Mu held (or before the DB is shared)
func (db *DB) NextUserID() int {
	db.userSeq++
	return db.userSeq
}

func (db *DB) NextPostID() int {
	db.postSeq++
	return db.postSeq
}

func (db *DB) NextCommentID() int {
	db.commentSeq++
	return db.commentSeq
}

func (db *DB) HealthCheck() error {
	if db == nil || db.Favorites == nil {
		return fmt.Errorf("база данных не инициализирована")
	}
	return nil
}

// Counts returns the sizes of every collection for the stats endpoint
func (db *DB) Counts() (users, posts, comments, favorites int) {
	db.Mu.Lock()
	defer db.Mu.Unlock()
	return len(db.Users), len(db.Posts), len(db.Comments), len(db.Favorites)
}
