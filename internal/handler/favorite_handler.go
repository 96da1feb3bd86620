package handlers

import (
	"errors"
	"net/http"

	"blogplatform/internal/models"
	"blogplatform/internal/repository"
)

func (h *Handlers) AddFavorite(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	postID, err := postIDFromRequest(r)
	if err != nil {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	if err := h.FavoriteService.AddFavorite(r.Context(), h.currentUserID(r), postID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/favorites", http.StatusSeeOther)
}

func (h *Handlers) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	postID, err := postIDFromRequest(r)
	if err != nil {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	if err := h.FavoriteService.RemoveFavorite(r.Context(), h.currentUserID(r), postID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/favorites", http.StatusSeeOther)
}

// FavoritesPage renders the user's favorited posts with their comments
func (h *Handlers) FavoritesPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := h.currentUserID(r)

	posts, err := h.FavoriteService.ListFavorites(r.Context(), userID)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	grouped, err := h.CommentService.GroupComments(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, PostView{
			Post:      p,
			Comments:  grouped[p.ID],
			Favorited: true,
		})
	}

	h.render(w, "favorites.html", map[string]interface{}{
		"Title": "Избранные посты",
		"Posts": views,
	})
}

// PostView is what the HTML list templates iterate over
type PostView struct {
	models.Post
	Comments  []models.Comment
	Favorited bool
}
