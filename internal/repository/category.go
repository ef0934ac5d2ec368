package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yummyrecipes/yummyrecipes-go/internal/model"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateCategory = errors.New("category name already exists for this user")
)

// CategoryRepository handles category persistence operations. Every query
// is scoped by user_id so a category owned by someone else is
// indistinguishable from a missing one.
type CategoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserts a new category and sets the generated ID on the struct.
func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	query := `INSERT INTO categories (user_id, name, description) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, category.UserID, category.Name, category.Description)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateCategory
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	category.ID = id
	return nil
}

// GetByID retrieves a category by id within the owner's scope.
func (r *CategoryRepository) GetByID(ctx context.Context, userID, id int64) (*model.Category, error) {
	query := `SELECT id, user_id, name, description, created_at, updated_at
		FROM categories WHERE user_id = ? AND id = ?`

	category := &model.Category{}
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(
		&category.ID, &category.UserID, &category.Name, &category.Description,
		&category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	return category, nil
}

// ExistsByName reports whether the owner already has a category with this
// name, excluding the category with excludeID (pass 0 when creating).
func (r *CategoryRepository) ExistsByName(ctx context.Context, userID int64, name string, excludeID int64) (bool, error) {
	query := `SELECT COUNT(*) FROM categories WHERE user_id = ? AND name = ? AND id <> ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, userID, name, excludeID).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

// CountByUser returns the number of categories the owner has, optionally
// filtered by a name substring.
func (r *CategoryRepository) CountByUser(ctx context.Context, userID int64, search string) (int, error) {
	query := `SELECT COUNT(*) FROM categories WHERE user_id = ? AND name LIKE ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, userID, "%"+search+"%").Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// ListByUser retrieves a page of the owner's categories ordered by id,
// optionally filtered by a name substring.
func (r *CategoryRepository) ListByUser(ctx context.Context, userID int64, search string, limit, offset int) ([]model.Category, error) {
	query := `SELECT id, user_id, name, description, created_at, updated_at
		FROM categories WHERE user_id = ? AND name LIKE ? ORDER BY id ASC LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, userID, "%"+search+"%", limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// Update overwrites the name and description of an owned category.
func (r *CategoryRepository) Update(ctx context.Context, category *model.Category) error {
	query := `UPDATE categories SET name = ?, description = ? WHERE user_id = ? AND id = ?`

	// Existence is checked by the caller before updating; MySQL reports
	// zero affected rows for a no-op update, so rows affected is not a
	// reliable not-found signal here.
	_, err := r.db.ExecContext(ctx, query, category.Name, category.Description, category.UserID, category.ID)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateCategory
		}
		return err
	}

	return nil
}

// Delete removes an owned category. Recipes under it are removed by the
// ON DELETE CASCADE constraint.
func (r *CategoryRepository) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM categories WHERE user_id = ? AND id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
