package repository

import "blogplatform/internal/models"

// PaginatePosts returns data[start:end] with standard clamping:
// start = (page-1)*limit, end = start+limit. Out-of-range pages
// yield an empty slice, never an error.
func PaginatePosts(data []models.Post, page, limit int) []models.Post {
	if page < 1 || limit < 1 {
		return []models.Post{}
	}

	start := (page - 1) * limit
	end := start + limit

	if start > len(data) {
		start = len(data)
	}
	if end > len(data) {
		end = len(data)
	}

	return data[start:end]
}

// TotalPages computes ceil(count/perPage) for the home page pager
func TotalPages(count, perPage int) int {
	if perPage < 1 {
		return 0
	}
	return (count + perPage - 1) / perPage
}
