package handlers

import (
	"errors"
	"net/http"

	"blogplatform/internal/repository"
)

type CommentFormRequest struct {
	Author string `validate:"required"`
	Text   string `validate:"required"`
}

// Comments dispatches /posts/{id}/comments: POST adds from the HTML form,
// GET lists as JSON in insertion order
func (h *Handlers) Comments(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createComment(w, r)
	case http.MethodGet:
		h.listComments(w, r)
	default:
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) createComment(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDFromRequest(r)
	if err != nil {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	req := CommentFormRequest{
		Author: r.FormValue("author"),
		Text:   r.FormValue("text"),
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Отсутствует автор или текст комментария", http.StatusBadRequest)
		return
	}

	if _, err := h.CommentService.AddComment(r.Context(), postID, req.Author, req.Text); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) listComments(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDFromRequest(r)
	if err != nil {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	comments, err := h.CommentService.ListComments(r.Context(), postID)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}
