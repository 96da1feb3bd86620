package repository

import (
	"context"
	"fmt"

	"blogplatform/internal/database"
	"blogplatform/internal/models"
)

type commentRepository struct {
	db *database.DB
}

func NewCommentRepository(db *database.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, postID int, author, text string) (*models.Comment, error) {
	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	// the parent post must exist
	found := false
	for _, p := range r.db.Posts {
		if p.ID == postID {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("пост с ID %d: %w", postID, ErrPostNotFound)
	}

	comment := models.Comment{
		ID:     r.db.NextCommentID(),
		PostID: postID,
		Author: author,
		Text:   text,
	}
	r.db.Comments = append(r.db.Comments, comment)

	return &comment, nil
}

func (r *commentRepository) GetByPostID(ctx context.Context, postID int) ([]models.Comment, error) {
	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	results := []models.Comment{}
	for _, c := range r.db.Comments {
		if c.PostID == postID {
			results = append(results, c)
		}
	}

	return results, nil
}

// GroupByPost builds the post id -> comments mapping for HTML rendering.
// Comments keep their insertion order within each post.
func (r *commentRepository) GroupByPost(ctx context.Context) (map[int][]models.Comment, error) {
	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	grouped := make(map[int][]models.Comment)
	for _, c := range r.db.Comments {
		grouped[c.PostID] = append(grouped[c.PostID], c)
	}

	return grouped, nil
}
