package model

import "time"

// Recipe represents a recipe belonging to exactly one category.
type Recipe struct {
	ID          int64
	CategoryID  int64
	Name        string
	Time        string
	Ingredients string
	Direction   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecipeRequest carries the form fields for creating or updating a recipe.
type RecipeRequest struct {
	Name        string
	Time        string
	Ingredients string
	Direction   string
}

// RecipeResponse represents recipe data safe for API responses.
type RecipeResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Time         string    `json:"time"`
	Ingredients  string    `json:"ingredients"`
	Direction    string    `json:"direction"`
	CategoryID   int64     `json:"category_id"`
	DateCreated  time.Time `json:"date_created"`
	DateModified time.Time `json:"date_modified"`
}

// NewRecipeResponse converts a Recipe into its API representation.
func NewRecipeResponse(rec Recipe) RecipeResponse {
	return RecipeResponse{
		ID:           rec.ID,
		Name:         rec.Name,
		Time:         rec.Time,
		Ingredients:  rec.Ingredients,
		Direction:    rec.Direction,
		CategoryID:   rec.CategoryID,
		DateCreated:  rec.CreatedAt,
		DateModified: rec.UpdatedAt,
	}
}
