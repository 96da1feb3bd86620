package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"blogplatform/internal/config"
	"blogplatform/internal/middleware"
	"blogplatform/internal/repository"
	"blogplatform/internal/service"
	"blogplatform/internal/view"
)

type Handlers struct {
	AuthService     service.AuthService
	UserService     service.UserService
	PostService     service.PostService
	CommentService  service.CommentService
	FavoriteService service.FavoriteService
	StatsService    service.StatsService
	FavoriteRepo    repository.FavoriteRepository
	Cfg             *config.Config
	View            *view.View
	Validate        *validator.Validate
}

func NewHandlers(repo *repository.Repository, services *service.Service, cfg *config.Config, v *view.View) *Handlers {
	return &Handlers{
		AuthService:     services.Auth,
		UserService:     services.User,
		PostService:     services.Post,
		CommentService:  services.Comment,
		FavoriteService: services.Favorite,
		StatsService:    services.Stats,
		FavoriteRepo:    repo.Favorite,
		Cfg:             cfg,
		View:            v,
		Validate:        validator.New(),
	}
}

// currentUserID reads the identity resolved by the session middleware
func (h *Handlers) currentUserID(r *http.Request) int {
	return middleware.UserID(r)
}

// postIDFromRequest extracts the {id} path variable
func postIDFromRequest(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

func (h *Handlers) render(w http.ResponseWriter, name string, data interface{}) {
	if err := h.View.Render(w, name, data); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handlers) StatsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stats, err := h.StatsService.GetCounts()
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, stats, http.StatusOK)
}
