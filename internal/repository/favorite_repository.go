package repository

import (
	"context"
	"fmt"

	"blogplatform/internal/database"
	"blogplatform/internal/models"
)

type favoriteRepository struct {
	db *database.DB
}

func NewFavoriteRepository(db *database.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add is idempotent: adding an already-favorited post is a no-op.
func (r *favoriteRepository) Add(ctx context.Context, userID, postID int) error {
	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	found := false
	for _, p := range r.db.Posts {
		if p.ID == postID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("пост с ID %d: %w", postID, ErrPostNotFound)
	}

	for _, id := range r.db.Favorites[userID] {
		if id == postID {
			return nil
		}
	}
	r.db.Favorites[userID] = append(r.db.Favorites[userID], postID)

	return nil
}

// Remove prunes the post id if present; a user whose favorite list
// becomes empty is dropped from the index entirely.
func (r *favoriteRepository) Remove(ctx context.Context, userID, postID int) error {
	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	favs, ok := r.db.Favorites[userID]
	if !ok {
		return nil
	}

	kept := favs[:0]
	for _, id := range favs {
		if id != postID {
			kept = append(kept, id)
		}
	}

	if len(kept) == 0 {
		delete(r.db.Favorites, userID)
	} else {
		r.db.Favorites[userID] = kept
	}

	return nil
}

// GetPosts resolves the user's favorited ids against the post store,
// silently dropping ids that no longer resolve.
func (r *favoriteRepository) GetPosts(ctx context.Context, userID int) ([]models.Post, error) {
	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	favs := r.db.Favorites[userID]

	results := []models.Post{}
	for _, p := range r.db.Posts {
		for _, id := range favs {
			if p.ID == id {
				results = append(results, p)
				break
			}
		}
	}

	return results, nil
}

func (r *favoriteRepository) Contains(ctx context.Context, userID, postID int) bool {
	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	for _, id := range r.db.Favorites[userID] {
		if id == postID {
			return true
		}
	}

	return false
}
