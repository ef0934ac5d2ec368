package service

import (
	"context"
	"errors"
	"strings"

	"github.com/yummyrecipes/yummyrecipes-go/internal/model"
	"github.com/yummyrecipes/yummyrecipes-go/internal/repository"
)

var (
	ErrCategoryFieldsRequired = errors.New("name or description cannot be empty")
	ErrCategoryNameTooLong    = errors.New("category name must be at most 50 characters")
	ErrCategoryDescTooLong    = errors.New("category description must be at most 100 characters")
	ErrCategoryExists         = errors.New("category already exists")
	ErrCategoryNotFound       = errors.New("category does not exist")
	ErrNoCategories           = errors.New("no categories available at the moment")
	ErrNoCategoryMatches      = errors.New("no categories match the search")
)

// CategoryService handles category business logic. All operations are
// scoped to the authenticated owner; a category owned by another user is
// reported as missing.
type CategoryService struct {
	repo *repository.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func validateCategoryRequest(req *model.CategoryRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)

	if req.Name == "" || req.Description == "" {
		return ErrCategoryFieldsRequired
	}
	if len(req.Name) > 50 {
		return ErrCategoryNameTooLong
	}
	if len(req.Description) > 100 {
		return ErrCategoryDescTooLong
	}

	return nil
}

// Create adds a new category for the owner. The name must be unique within
// the owner's scope.
func (s *CategoryService) Create(ctx context.Context, userID int64, req model.CategoryRequest) (*model.Category, error) {
	if err := validateCategoryRequest(&req); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByName(ctx, userID, req.Name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCategoryExists
	}

	category := &model.Category{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}

	// Re-read so the response carries the DB-assigned timestamps.
	return s.get(ctx, userID, category.ID)
}

// Get retrieves a single owned category by id.
func (s *CategoryService) Get(ctx context.Context, userID, id int64) (*model.Category, error) {
	return s.get(ctx, userID, id)
}

// List retrieves a page of the owner's categories, optionally filtered by
// a name substring.
func (s *CategoryService) List(ctx context.Context, userID int64, search string, page, limit int) ([]model.Category, model.Pagination, error) {
	total, err := s.repo.CountByUser(ctx, userID, search)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	if total == 0 {
		if search != "" {
			return nil, model.Pagination{}, ErrNoCategoryMatches
		}
		return nil, model.Pagination{}, ErrNoCategories
	}

	offset, meta, err := paginate(page, limit, total)
	if err != nil {
		return nil, model.Pagination{}, err
	}

	categories, err := s.repo.ListByUser(ctx, userID, search, limit, offset)
	if err != nil {
		return nil, model.Pagination{}, err
	}

	return categories, meta, nil
}

// Update overwrites an owned category's name and description.
func (s *CategoryService) Update(ctx context.Context, userID, id int64, req model.CategoryRequest) (*model.Category, error) {
	if _, err := s.get(ctx, userID, id); err != nil {
		return nil, err
	}

	if err := validateCategoryRequest(&req); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByName(ctx, userID, req.Name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCategoryExists
	}

	category := &model.Category{
		ID:          id,
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}

	return s.get(ctx, userID, id)
}

// Delete removes an owned category and, through the cascade, its recipes.
func (s *CategoryService) Delete(ctx context.Context, userID, id int64) error {
	err := s.repo.Delete(ctx, userID, id)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return ErrCategoryNotFound
	}
	return err
}

func (s *CategoryService) get(ctx context.Context, userID, id int64) (*model.Category, error) {
	category, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}
