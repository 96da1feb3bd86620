package handlers

import (
	"errors"
	"net/http"

	"blogplatform/internal/models"
	"blogplatform/internal/repository"
)

type ProfileRequest struct {
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
}

type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Profile serves the profile page and handles the update form
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.profilePage(w, r)
	case http.MethodPost:
		h.updateProfile(w, r)
	default:
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) profilePage(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.GetUser(r.Context(), h.currentUserID(r))
	if err != nil {
		// the page still renders, just without user data
		user = nil
	}

	h.render(w, "profile.html", map[string]interface{}{
		"Title": "Профиль",
		"User":  user,
	})
}

func (h *Handlers) updateProfile(w http.ResponseWriter, r *http.Request) {
	req := ProfileRequest{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные формы", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.UpdateProfile(r.Context(), h.currentUserID(r), req.Username, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			WriteError(w, "Пользователь не найден", http.StatusNotFound)
		} else if errors.Is(err, repository.ErrEmailTaken) {
			WriteError(w, "Email уже используется другим пользователем", http.StatusBadRequest)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	h.render(w, "profile.html", map[string]interface{}{
		"Title": "Профиль",
		"User":  user,
	})
}

func (h *Handlers) SearchUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	users, err := h.UserService.SearchUsers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// forming the response without passwords
	response := make([]UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, toUserResponse(u))
	}

	WriteSuccess(w, response, http.StatusOK)
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}
