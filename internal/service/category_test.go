package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yummyrecipes/yummyrecipes-go/internal/model"
	"github.com/yummyrecipes/yummyrecipes-go/internal/repository"
)

func newTestCategoryService(t *testing.T) (*CategoryService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := setupMockDB(t)
	return NewCategoryService(repository.NewCategoryRepository(db)), mock
}

func categoryRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "name", "description", "created_at", "updated_at"})
}

func TestCategoryCreateValidation(t *testing.T) {
	svc := NewCategoryService(repository.NewCategoryRepository(nil))

	tests := []struct {
		name string
		req  model.CategoryRequest
		want error
	}{
		{"empty name", model.CategoryRequest{Description: "d"}, ErrCategoryFieldsRequired},
		{"empty desc", model.CategoryRequest{Name: "n"}, ErrCategoryFieldsRequired},
		{"blank name", model.CategoryRequest{Name: "   ", Description: "d"}, ErrCategoryFieldsRequired},
		{"name too long", model.CategoryRequest{Name: strings.Repeat("a", 51), Description: "d"}, ErrCategoryNameTooLong},
		{"desc too long", model.CategoryRequest{Name: "n", Description: strings.Repeat("a", 101)}, ErrCategoryDescTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), 1, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCategoryCreateSuccess(t *testing.T) {
	svc, mock := newTestCategoryService(t)
	now := time.Now()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM categories").
		WithArgs(int64(1), "Dessert", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(0))
	mock.ExpectExec("INSERT INTO categories").
		WithArgs(int64(1), "Dessert", "sweet things").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectQuery("SELECT id, user_id, name, description").
		WithArgs(int64(1), int64(3)).
		WillReturnRows(categoryRows().AddRow(3, 1, "Dessert", "sweet things", now, now))

	category, err := svc.Create(context.Background(), 1, model.CategoryRequest{Name: "Dessert", Description: "sweet things"})
	require.NoError(t, err)
	assert.Equal(t, "Dessert", category.Name)
	assert.Equal(t, "sweet things", category.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryCreateTrimsFields(t *testing.T) {
	svc, mock := newTestCategoryService(t)
	now := time.Now()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM categories").
		WithArgs(int64(1), "Dessert", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(0))
	mock.ExpectExec("INSERT INTO categories").
		WithArgs(int64(1), "Dessert", "sweet things").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectQuery("SELECT id, user_id, name, description").
		WillReturnRows(categoryRows().AddRow(3, 1, "Dessert", "sweet things", now, now))

	_, err := svc.Create(context.Background(), 1, model.CategoryRequest{Name: "  Dessert  ", Description: " sweet things "})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryCreateDuplicateName(t *testing.T) {
	svc, mock := newTestCategoryService(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM categories").
		WithArgs(int64(1), "Dessert", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(1))

	_, err := svc.Create(context.Background(), 1, model.CategoryRequest{Name: "Dessert", Description: "again"})
	assert.ErrorIs(t, err, ErrCategoryExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryGetForeignOwnerIsNotFound(t *testing.T) {
	svc, mock := newTestCategoryService(t)

	// User 2 asks for user 1's category; the scoped query finds nothing.
	mock.ExpectQuery("SELECT id, user_id, name, description").
		WithArgs(int64(2), int64(3)).
		WillReturnRows(categoryRows())

	_, err := svc.Get(context.Background(), 2, 3)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryListSinglePage(t *testing.T) {
	svc, mock := newTestCategoryService(t)
	now := time.Now()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM categories").
		WithArgs(int64(1), "%%").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(1))
	mock.ExpectQuery("SELECT id, user_id, name, description").
		WithArgs(int64(1), "%%", 1, 0).
		WillReturnRows(categoryRows().AddRow(1, 1, "Dessert", "sweet", now, now))

	categories, meta, err := svc.List(context.Background(), 1, "", 1, 1)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Dessert", categories[0].Name)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
	assert.Equal(t, 1, meta.TotalItems)
	assert.Equal(t, 1, meta.TotalPages)
}

func TestCategoryListMiddlePageFlags(t *testing.T) {
	svc, mock := newTestCategoryService(t)
	now := time.Now()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM categories").
		WithArgs(int64(1), "%%").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(5))
	mock.ExpectQuery("SELECT id, user_id, name, description").
		WithArgs(int64(1), "%%", 2, 2).
		WillReturnRows(categoryRows().
			AddRow(3, 1, "Soup", "warm", now, now).
			AddRow(4, 1, "Salad", "fresh", now, now))

	_, meta, err := svc.List(context.Background(), 1, "", 2, 2)
	require.NoError(t, err)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	assert.Equal(t, 3, meta.NextPage)
	assert.Equal(t, 1, meta.PrevPage)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestCategoryListPageOutOfRange(t *testing.T) {
	svc, mock := newTestCategoryService(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM categories").
		WithArgs(int64(1), "%%").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(1))

	_, _, err := svc.List(context.Background(), 1, "", 2, 1)
	assert.ErrorIs(t, err, ErrPageOutOfRange)
}

func TestCategoryListEmpty(t *testing.T) {
	svc, mock := newTestCategoryService(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM categories").
		WithArgs(int64(1), "%%").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(0))

	_, _, err := svc.List(context.Background(), 1, "", 1, 5)
	assert.ErrorIs(t, err, ErrNoCategories)
}

func TestCategoryListSearchNoMatches(t *testing.T) {
	svc, mock := newTestCategoryService(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM categories").
		WithArgs(int64(1), "%nope%").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(0))

	_, _, err := svc.List(context.Background(), 1, "nope", 1, 5)
	assert.ErrorIs(t, err, ErrNoCategoryMatches)
}

func TestCategoryListInvalidPage(t *testing.T) {
	svc, mock := newTestCategoryService(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM categories").
		WithArgs(int64(1), "%%").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(3))

	_, _, err := svc.List(context.Background(), 1, "", 0, 5)
	assert.ErrorIs(t, err, ErrInvalidPage)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM categories").
		WithArgs(int64(1), "%%").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(3))

	_, _, err = svc.List(context.Background(), 1, "", 1, -1)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestCategoryUpdateNotFound(t *testing.T) {
	svc, mock := newTestCategoryService(t)

	mock.ExpectQuery("SELECT id, user_id, name, description").
		WithArgs(int64(1), int64(99)).
		WillReturnRows(categoryRows())

	_, err := svc.Update(context.Background(), 1, 99, model.CategoryRequest{Name: "n", Description: "d"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryUpdateRenameConflict(t *testing.T) {
	svc, mock := newTestCategoryService(t)
	now := time.Now()

	mock.ExpectQuery("SELECT id, user_id, name, description").
		WithArgs(int64(1), int64(3)).
		WillReturnRows(categoryRows().AddRow(3, 1, "Soup", "warm", now, now))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM categories").
		WithArgs(int64(1), "Dessert", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(1))

	_, err := svc.Update(context.Background(), 1, 3, model.CategoryRequest{Name: "Dessert", Description: "x"})
	assert.ErrorIs(t, err, ErrCategoryExists)
}

func TestCategoryDeleteNotFound(t *testing.T) {
	svc, mock := newTestCategoryService(t)

	mock.ExpectExec("DELETE FROM categories").
		WithArgs(int64(1), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.Delete(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
