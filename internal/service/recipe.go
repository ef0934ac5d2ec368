package service

import (
	"context"
	"errors"
	"strings"

	"github.com/yummyrecipes/yummyrecipes-go/internal/model"
	"github.com/yummyrecipes/yummyrecipes-go/internal/repository"
)

var (
	ErrRecipeFieldsRequired = errors.New("name, time, ingredients or direction cannot be empty")
	ErrRecipeNameTooLong    = errors.New("recipe name must be at most 50 characters")
	ErrRecipeFieldTooLong   = errors.New("recipe field exceeds the allowed length")
	ErrRecipeExists         = errors.New("recipe already exists in this category")
	ErrRecipeNotFound       = errors.New("recipe not available")
	ErrNoRecipes            = errors.New("no recipes available at the moment")
	ErrNoRecipeMatches      = errors.New("no recipes match the search")
)

// RecipeService handles recipe business logic. Every operation resolves
// the parent category within the owner's scope first, so a recipe under a
// foreign or missing category is reported as a missing category.
type RecipeService struct {
	categories *repository.CategoryRepository
	recipes    *repository.RecipeRepository
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(categories *repository.CategoryRepository, recipes *repository.RecipeRepository) *RecipeService {
	return &RecipeService{categories: categories, recipes: recipes}
}

func validateRecipeRequest(req *model.RecipeRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Time = strings.TrimSpace(req.Time)
	req.Ingredients = strings.TrimSpace(req.Ingredients)
	req.Direction = strings.TrimSpace(req.Direction)

	if req.Name == "" || req.Time == "" || req.Ingredients == "" || req.Direction == "" {
		return ErrRecipeFieldsRequired
	}
	if len(req.Name) > 50 {
		return ErrRecipeNameTooLong
	}
	if len(req.Time) > 50 || len(req.Ingredients) > 200 || len(req.Direction) > 200 {
		return ErrRecipeFieldTooLong
	}

	return nil
}

// Create adds a new recipe under an owned category. The name must be
// unique within the category.
func (s *RecipeService) Create(ctx context.Context, userID, categoryID int64, req model.RecipeRequest) (*model.Recipe, error) {
	if err := s.resolveCategory(ctx, userID, categoryID); err != nil {
		return nil, err
	}

	if err := validateRecipeRequest(&req); err != nil {
		return nil, err
	}

	exists, err := s.recipes.ExistsByName(ctx, categoryID, req.Name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrRecipeExists
	}

	recipe := &model.Recipe{
		CategoryID:  categoryID,
		Name:        req.Name,
		Time:        req.Time,
		Ingredients: req.Ingredients,
		Direction:   req.Direction,
	}

	if err := s.recipes.Create(ctx, recipe); err != nil {
		if errors.Is(err, repository.ErrDuplicateRecipe) {
			return nil, ErrRecipeExists
		}
		return nil, err
	}

	return s.get(ctx, categoryID, recipe.ID)
}

// Get retrieves a single recipe under an owned category.
func (s *RecipeService) Get(ctx context.Context, userID, categoryID, id int64) (*model.Recipe, error) {
	if err := s.resolveCategory(ctx, userID, categoryID); err != nil {
		return nil, err
	}
	return s.get(ctx, categoryID, id)
}

// List retrieves a page of an owned category's recipes, optionally
// filtered by a name substring.
func (s *RecipeService) List(ctx context.Context, userID, categoryID int64, search string, page, limit int) ([]model.Recipe, model.Pagination, error) {
	if err := s.resolveCategory(ctx, userID, categoryID); err != nil {
		return nil, model.Pagination{}, err
	}

	total, err := s.recipes.CountByCategory(ctx, categoryID, search)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	if total == 0 {
		if search != "" {
			return nil, model.Pagination{}, ErrNoRecipeMatches
		}
		return nil, model.Pagination{}, ErrNoRecipes
	}

	offset, meta, err := paginate(page, limit, total)
	if err != nil {
		return nil, model.Pagination{}, err
	}

	recipes, err := s.recipes.ListByCategory(ctx, categoryID, search, limit, offset)
	if err != nil {
		return nil, model.Pagination{}, err
	}

	return recipes, meta, nil
}

// Update overwrites the fields of a recipe under an owned category.
func (s *RecipeService) Update(ctx context.Context, userID, categoryID, id int64, req model.RecipeRequest) (*model.Recipe, error) {
	if err := s.resolveCategory(ctx, userID, categoryID); err != nil {
		return nil, err
	}

	if _, err := s.get(ctx, categoryID, id); err != nil {
		return nil, err
	}

	if err := validateRecipeRequest(&req); err != nil {
		return nil, err
	}

	exists, err := s.recipes.ExistsByName(ctx, categoryID, req.Name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrRecipeExists
	}

	recipe := &model.Recipe{
		ID:          id,
		CategoryID:  categoryID,
		Name:        req.Name,
		Time:        req.Time,
		Ingredients: req.Ingredients,
		Direction:   req.Direction,
	}

	if err := s.recipes.Update(ctx, recipe); err != nil {
		if errors.Is(err, repository.ErrDuplicateRecipe) {
			return nil, ErrRecipeExists
		}
		return nil, err
	}

	return s.get(ctx, categoryID, id)
}

// Delete removes a recipe under an owned category.
func (s *RecipeService) Delete(ctx context.Context, userID, categoryID, id int64) error {
	if err := s.resolveCategory(ctx, userID, categoryID); err != nil {
		return err
	}

	err := s.recipes.Delete(ctx, categoryID, id)
	if errors.Is(err, repository.ErrRecipeNotFound) {
		return ErrRecipeNotFound
	}
	return err
}

// resolveCategory confirms the category exists and belongs to the caller.
func (s *RecipeService) resolveCategory(ctx context.Context, userID, categoryID int64) error {
	_, err := s.categories.GetByID(ctx, userID, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}

func (s *RecipeService) get(ctx context.Context, categoryID, id int64) (*model.Recipe, error) {
	recipe, err := s.recipes.GetByID(ctx, categoryID, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}
