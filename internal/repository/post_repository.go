package repository

import (
	"context"
	"fmt"
	"strings"

	"blogplatform/internal/database"
	"blogplatform/internal/models"
)

type postRepository struct {
	db *database.DB
}

func NewPostRepository(db *database.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, title, content string, userID int) (*models.Post, error) {
	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	post := models.Post{
		ID:      r.db.NextPostID(),
		Title:   title,
		Content: content,
		UserID:  userID,
	}
	r.db.Posts = append(r.db.Posts, post)

	return &post, nil
}

func (r *postRepository) GetByID(ctx context.Context, postID int) (*models.Post, error) {
	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	for _, p := range r.db.Posts {
		if p.ID == postID {
			post := p
			return &post, nil
		}
	}

	return nil, fmt.Errorf("пост с ID %d: %w", postID, ErrPostNotFound)
}

// List returns a page of posts in insertion order. userID = 0 means no owner filter.
func (r *postRepository) List(ctx context.Context, page, limit, userID int) ([]models.Post, error) {
	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	data := r.db.Posts
	if userID != 0 {
		filtered := []models.Post{}
		for _, p := range data {
			if p.UserID == userID {
				filtered = append(filtered, p)
			}
		}
		data = filtered
	}

	return PaginatePosts(data, page, limit), nil
}

func (r *postRepository) Update(ctx context.Context, postID int, title, content string) (*models.Post, error) {
	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	for i := range r.db.Posts {
		if r.db.Posts[i].ID == postID {
			r.db.Posts[i].Title = title
			r.db.Posts[i].Content = content
			post := r.db.Posts[i]
			return &post, nil
		}
	}

	return nil, fmt.Errorf("пост с ID %d: %w", postID, ErrPostNotFound)
}

// Delete removes the post and cascades: comments of the post are dropped,
// the post id is pruned from every favorites entry, emptied entries are
// removed from the index. The whole cascade happens under one lock.
func (r *postRepository) Delete(ctx context.Context, postID int) error {
	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	posts := r.db.Posts[:0]
	for _, p := range r.db.Posts {
		if p.ID != postID {
			posts = append(posts, p)
		}
	}
	r.db.Posts = posts

	comments := r.db.Comments[:0]
	for _, c := range r.db.Comments {
		if c.PostID != postID {
			comments = append(comments, c)
		}
	}
	r.db.Comments = comments

	for userID, favs := range r.db.Favorites {
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
	}

	return nil
}

func (r *postRepository) Search(ctx context.Context, query string, page, limit int) ([]models.Post, error) {
	results, err := r.Filter(ctx, query)
	if err != nil {
		return nil, err
	}

	return PaginatePosts(results, page, limit), nil
}

// Filter returns every post whose title or content contains the query,
// case-insensitive, without pagination. Used by the home page listing.
func (r *postRepository) Filter(ctx context.Context, query string) ([]models.Post, error) {
	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	q := strings.ToLower(query)

	results := []models.Post{}
	for _, p := range r.db.Posts {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Content), q) {
			results = append(results, p)
		}
	}

	return results, nil
}

func (r *postRepository) Count(ctx context.Context) (int, error) {
	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	return len(r.db.Posts), nil
}
