package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"blogplatform/cmd/app"
	"blogplatform/internal/config"
	handlers "blogplatform/internal/handler"
	"blogplatform/internal/middleware"
	"blogplatform/internal/view"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// setting up config
	cfg := config.LoadConfig()

	db, repo, services := app.App(cfg)

	if err := db.HealthCheck(); err != nil {
		logger.Fatal().Err(err).Msg("проверка базы данных не пройдена")
	}

	v, err := view.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("ошибка при загрузке шаблонов")
	}

	handler := handlers.NewHandlers(repo, services, cfg, v)

	router := mux.NewRouter()

	// HTML pages and form flows
	router.HandleFunc("/", handler.Home)
	router.HandleFunc("/register", handler.RegisterPage)
	router.HandleFunc("/login", handler.LoginPage)
	router.HandleFunc("/logout", handler.Logout)
	router.HandleFunc("/auth/register", handler.Register)
	router.HandleFunc("/auth/login", handler.Login)
	router.HandleFunc("/profile", handler.Profile)
	router.HandleFunc("/favorites", handler.FavoritesPage)

	// posts, comments, favorites
	router.HandleFunc("/posts", handler.Posts)
	router.HandleFunc("/posts/{id:[0-9]+}", handler.Post)
	router.HandleFunc("/posts/{id:[0-9]+}/edit", handler.EditPost)
	router.HandleFunc("/posts/{id:[0-9]+}/delete", handler.DeletePost)
	router.HandleFunc("/posts/{id:[0-9]+}/comments", handler.Comments)
	router.HandleFunc("/posts/{id:[0-9]+}/favorite", handler.AddFavorite)
	router.HandleFunc("/posts/{id:[0-9]+}/unfavorite", handler.RemoveFavorite)

	// search and service endpoints
	router.HandleFunc("/search/posts", handler.SearchPosts)
	router.HandleFunc("/search/users", handler.SearchUsers)
	router.HandleFunc("/health", handler.HealthHandler)
	router.HandleFunc("/stats", handler.StatsHandler)

	handlerChain := middleware.Chain(
		router,
		middleware.SessionMiddleware(cfg),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware(logger),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	logger.Info().Str("addr", addr).Msg("сервер запущен")

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		logger.Fatal().Err(err).Msg("ошибка запуска сервера")
	}
}
