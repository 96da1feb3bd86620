package test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blogplatform/internal/models"
	"blogplatform/internal/service"
)

func TestHomeHandler(t *testing.T) {
	// Arrange
	handler, m := createTestHandler(t)

	m.Post.On("HomePage", mock.Anything, "", 1).Return(&service.HomePage{
		Posts: []models.Post{
			{ID: 1, Title: "Первый пост", Content: "Привет", UserID: 1},
			{ID: 2, Title: "Второй пост", Content: "Ещё текст", UserID: 1},
		},
		CommentsByPost: map[int][]models.Comment{
			1: {{ID: 1, PostID: 1, Author: "гость", Text: "Отличный пост"}},
		},
		Page:       1,
		TotalPages: 1,
	}, nil)
	m.FavoriteRepo.On("Contains", mock.Anything, 2, 1).Return(true)
	m.FavoriteRepo.On("Contains", mock.Anything, 2, 2).Return(false)

	req := asUser(httptest.NewRequest(http.MethodGet, "/", nil), 2)
	rr := httptest.NewRecorder()

	// Act
	handler.Home(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Первый пост")
	assert.Contains(t, rr.Body.String(), "Второй пост")
	assert.Contains(t, rr.Body.String(), "Отличный пост")
	m.Post.AssertExpectations(t)
	m.FavoriteRepo.AssertExpectations(t)
}

func TestHomeHandler_QueryAndPage(t *testing.T) {
	handler, m := createTestHandler(t)

	m.Post.On("HomePage", mock.Anything, "еда", 2).Return(&service.HomePage{
		Posts:          []models.Post{},
		CommentsByPost: map[int][]models.Comment{},
		Query:          "еда",
		Page:           2,
		TotalPages:     3,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/?q=%D0%B5%D0%B4%D0%B0&page=2", nil)
	rr := httptest.NewRecorder()

	handler.Home(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	m.Post.AssertExpectations(t)
}

func TestHomeHandler_NegativePageClamped(t *testing.T) {
	handler, m := createTestHandler(t)

	m.Post.On("HomePage", mock.Anything, "", 1).Return(&service.HomePage{
		Posts:          []models.Post{},
		CommentsByPost: map[int][]models.Comment{},
		Page:           1,
		TotalPages:     1,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/?page=-3", nil)
	rr := httptest.NewRecorder()

	handler.Home(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	m.Post.AssertExpectations(t)
}

func TestHomeHandler_UnknownPath(t *testing.T) {
	handler, _ := createTestHandler(t)

	rr := httptest.NewRecorder()
	handler.Home(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
