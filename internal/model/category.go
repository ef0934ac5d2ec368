package model

import "time"

// Category represents a recipe category owned by a single user.
type Category struct {
	ID          int64
	UserID      int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryRequest carries the form fields for creating or updating a category.
type CategoryRequest struct {
	Name        string
	Description string
}

// CategoryResponse represents category data safe for API responses.
type CategoryResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"desc"`
	UserID       int64     `json:"user_id"`
	DateCreated  time.Time `json:"date_created"`
	DateModified time.Time `json:"date_modified"`
}

// NewCategoryResponse converts a Category into its API representation.
func NewCategoryResponse(c Category) CategoryResponse {
	return CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		UserID:       c.UserID,
		DateCreated:  c.CreatedAt,
		DateModified: c.UpdatedAt,
	}
}
