package handlers

import (
	"net/http"
	"strconv"
)

// Home renders the main page: posts filtered by ?q, paginated by ?page
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteError(w, "Страница не найдена", http.StatusNotFound)
		return
	}

	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	home, err := h.PostService.HomePage(r.Context(), query, page)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	userID := h.currentUserID(r)

	views := make([]PostView, 0, len(home.Posts))
	for _, p := range home.Posts {
		views = append(views, PostView{
			Post:      p,
			Comments:  home.CommentsByPost[p.ID],
			Favorited: h.FavoriteRepo.Contains(r.Context(), userID, p.ID),
		})
	}

	h.render(w, "index.html", map[string]interface{}{
		"Title":      "Главная — Блог",
		"Query":      home.Query,
		"Page":       home.Page,
		"TotalPages": home.TotalPages,
		"PrevPage":   home.Page - 1,
		"NextPage":   home.Page + 1,
		"Posts":      views,
	})
}
