package repository

import (
	"context"
	"fmt"
	"strings"

	"blogplatform/internal/database"
	"blogplatform/internal/models"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, username, email, password string) (*models.User, error) {
	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	// email must be unique (exact match)
	for _, u := range r.db.Users {
		if u.Email == email {
			return nil, fmt.Errorf("пользователь с email %s: %w", email, ErrEmailTaken)
		}
	}

	user := models.User{
		ID:       r.db.NextUserID(),
		Username: username,
		Email:    email,
		Role:     models.RoleUser,
		Password: password,
	}
	r.db.Users = append(r.db.Users, user)

	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int) (*models.User, error) {
	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	for _, u := range r.db.Users {
		if u.ID == userID {
			user := u
			return &user, nil
		}
	}

	return nil, fmt.Errorf("пользователь с ID %d: %w", userID, ErrUserNotFound)
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	for _, u := range r.db.Users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}

	return nil, fmt.Errorf("пользователь с email %s: %w", email, ErrUserNotFound)
}

func (r *userRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	// linear scan by email, then plain comparison
	for _, u := range r.db.Users {
		if u.Email == email {
			if u.Password != password {
				return nil, ErrInvalidCredentials
			}
			user := u
			return &user, nil
		}
	}

	return nil, ErrInvalidCredentials
}

func (r *userRepository) UpdateUser(ctx context.Context, userID int, username, email string) (*models.User, error) {
	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	// the new email must not belong to a different user
	for _, u := range r.db.Users {
		if u.Email == email && u.ID != userID {
			return nil, fmt.Errorf("email %s занят другим пользователем: %w", email, ErrEmailTaken)
		}
	}

	for i := range r.db.Users {
		if r.db.Users[i].ID == userID {
			r.db.Users[i].Username = username
			r.db.Users[i].Email = email
			user := r.db.Users[i]
			return &user, nil
		}
	}

	return nil, fmt.Errorf("пользователь с ID %d: %w", userID, ErrUserNotFound)
}

func (r *userRepository) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	r.db.Mu.Lock()
	defer r.db.Mu.Unlock()

	q := strings.ToLower(query)

	results := []models.User{}
	for _, u := range r.db.Users {
		if strings.Contains(strings.ToLower(u.Username), q) ||
			strings.Contains(strings.ToLower(u.Email), q) {
			results = append(results, u)
		}
	}

	return results, nil
}
