package service

import (
	"errors"

	"github.com/yummyrecipes/yummyrecipes-go/internal/model"
)

var (
	ErrInvalidPage    = errors.New("page must be a positive integer")
	ErrInvalidLimit   = errors.New("limit must be a positive integer")
	ErrPageOutOfRange = errors.New("page not found")
)

// DefaultPage and DefaultLimit apply when a listing request omits the
// query parameters.
const (
	DefaultPage  = 1
	DefaultLimit = 5
)

// paginate validates the page window against the total item count and
// returns the query offset plus the response metadata. A page past the
// last one is an error, never an empty success.
func paginate(page, limit, totalItems int) (int, model.Pagination, error) {
	if page < 1 {
		return 0, model.Pagination{}, ErrInvalidPage
	}
	if limit < 1 {
		return 0, model.Pagination{}, ErrInvalidLimit
	}

	meta := model.NewPagination(page, limit, totalItems)
	if totalItems > 0 && page > meta.TotalPages {
		return 0, model.Pagination{}, ErrPageOutOfRange
	}

	return (page - 1) * limit, meta, nil
}
