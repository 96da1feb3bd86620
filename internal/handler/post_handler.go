package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"blogplatform/internal/models"
	"blogplatform/internal/repository"
)

type PostFormRequest struct {
	Title   string `validate:"required"`
	Content string `validate:"required"`
}

type UpdatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type UpdatePostResponse struct {
	Message string       `json:"message"`
	Post    *models.Post `json:"post"`
}

// pageParams reads page/limit query parameters: page is 1-based,
// limit falls back to the configured default and is capped.
func (h *Handlers) pageParams(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > h.Cfg.MaxPageLimit {
		limit = h.Cfg.DefaultPageLimit
	}

	return page, limit
}

// Posts dispatches /posts: GET lists as JSON, POST creates from the HTML form
func (h *Handlers) Posts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listPosts(w, r)
	case http.MethodPost:
		h.createPost(w, r)
	default:
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) listPosts(w http.ResponseWriter, r *http.Request) {
	page, limit := h.pageParams(r)

	// optional owner filter
	userID, _ := strconv.Atoi(r.URL.Query().Get("user_id"))

	posts, err := h.PostService.ListPosts(r.Context(), page, limit, userID)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) createPost(w http.ResponseWriter, r *http.Request) {
	req := PostFormRequest{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Отсутствует заголовок или текст поста", http.StatusBadRequest)
		return
	}

	_, err := h.PostService.CreatePost(r.Context(), req.Title, req.Content, h.currentUserID(r))
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Post dispatches /posts/{id}: GET returns the post, PUT replaces title/content
func (h *Handlers) Post(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.getPost(w, r)
	case http.MethodPut:
		h.updatePost(w, r)
	default:
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) getPost(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDFromRequest(r)
	if err != nil {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) updatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDFromRequest(r)
	if err != nil {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Отсутствует заголовок или текст поста", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), postID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, UpdatePostResponse{Message: "Пост обновлён", Post: post}, http.StatusOK)
}

// EditPost is the HTML form entry point with the same effect as PUT
func (h *Handlers) EditPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	postID, err := postIDFromRequest(r)
	if err != nil {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	req := PostFormRequest{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Отсутствует заголовок или текст поста", http.StatusBadRequest)
		return
	}

	if _, err := h.PostService.UpdatePost(r.Context(), postID, req.Title, req.Content); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	postID, err := postIDFromRequest(r)
	if err != nil {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), postID); err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) SearchPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	page, limit := h.pageParams(r)

	posts, err := h.PostService.SearchPosts(r.Context(), r.URL.Query().Get("q"), page, limit)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}
