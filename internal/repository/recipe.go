package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yummyrecipes/yummyrecipes-go/internal/model"
)

var (
	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrDuplicateRecipe = errors.New("recipe name already exists in this category")
)

// RecipeRepository handles recipe persistence operations. Every query is
// scoped by category_id; the caller resolves the category through the
// owner's scope first, so ownership carries transitively.
type RecipeRepository struct {
	db *sql.DB
}

// NewRecipeRepository creates a new RecipeRepository.
func NewRecipeRepository(db *sql.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create inserts a new recipe and sets the generated ID on the struct.
func (r *RecipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	query := `INSERT INTO recipes (category_id, name, time, ingredients, direction) VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		recipe.CategoryID, recipe.Name, recipe.Time, recipe.Ingredients, recipe.Direction)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateRecipe
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	recipe.ID = id
	return nil
}

// GetByID retrieves a recipe by id within a category's scope.
func (r *RecipeRepository) GetByID(ctx context.Context, categoryID, id int64) (*model.Recipe, error) {
	query := `SELECT id, category_id, name, time, ingredients, direction, created_at, updated_at
		FROM recipes WHERE category_id = ? AND id = ?`

	recipe := &model.Recipe{}
	err := r.db.QueryRowContext(ctx, query, categoryID, id).Scan(
		&recipe.ID, &recipe.CategoryID, &recipe.Name, &recipe.Time,
		&recipe.Ingredients, &recipe.Direction, &recipe.CreatedAt, &recipe.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	return recipe, nil
}

// ExistsByName reports whether the category already contains a recipe with
// this name, excluding the recipe with excludeID (pass 0 when creating).
func (r *RecipeRepository) ExistsByName(ctx context.Context, categoryID int64, name string, excludeID int64) (bool, error) {
	query := `SELECT COUNT(*) FROM recipes WHERE category_id = ? AND name = ? AND id <> ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, categoryID, name, excludeID).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

// CountByCategory returns the number of recipes in a category, optionally
// filtered by a name substring.
func (r *RecipeRepository) CountByCategory(ctx context.Context, categoryID int64, search string) (int, error) {
	query := `SELECT COUNT(*) FROM recipes WHERE category_id = ? AND name LIKE ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, categoryID, "%"+search+"%").Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// ListByCategory retrieves a page of a category's recipes ordered by id,
// optionally filtered by a name substring.
func (r *RecipeRepository) ListByCategory(ctx context.Context, categoryID int64, search string, limit, offset int) ([]model.Recipe, error) {
	query := `SELECT id, category_id, name, time, ingredients, direction, created_at, updated_at
		FROM recipes WHERE category_id = ? AND name LIKE ? ORDER BY id ASC LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, categoryID, "%"+search+"%", limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []model.Recipe
	for rows.Next() {
		var rec model.Recipe
		if err := rows.Scan(
			&rec.ID, &rec.CategoryID, &rec.Name, &rec.Time,
			&rec.Ingredients, &rec.Direction, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}

	return recipes, rows.Err()
}

// Update overwrites the fields of a recipe within a category's scope.
func (r *RecipeRepository) Update(ctx context.Context, recipe *model.Recipe) error {
	query := `UPDATE recipes SET name = ?, time = ?, ingredients = ?, direction = ?
		WHERE category_id = ? AND id = ?`

	// Existence is checked by the caller before updating; MySQL reports
	// zero affected rows for a no-op update.
	_, err := r.db.ExecContext(ctx, query,
		recipe.Name, recipe.Time, recipe.Ingredients, recipe.Direction,
		recipe.CategoryID, recipe.ID)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateRecipe
		}
		return err
	}

	return nil
}

// Delete removes a recipe within a category's scope.
func (r *RecipeRepository) Delete(ctx context.Context, categoryID, id int64) error {
	query := `DELETE FROM recipes WHERE category_id = ? AND id = ?`

	result, err := r.db.ExecContext(ctx, query, categoryID, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrRecipeNotFound
	}

	return nil
}
