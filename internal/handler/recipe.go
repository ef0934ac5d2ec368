package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/yummyrecipes/yummyrecipes-go/internal/middleware"
	"github.com/yummyrecipes/yummyrecipes-go/internal/model"
	"github.com/yummyrecipes/yummyrecipes-go/internal/service"
)

// RecipeHandler handles HTTP requests for recipe operations under an
// owned category.
type RecipeHandler struct {
	service *service.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(svc *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{service: svc}
}

// HandleList handles GET /category/{category_id}/recipes requests.
func (h *RecipeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusForbidden, errorResponse("unauthorized, please login or register"))
		return
	}

	categoryID, ok := categoryIDParam(w, r)
	if !ok {
		return
	}

	page, limit, parseErr := parsePageLimit(r)
	if parseErr != "" {
		writeJSON(w, http.StatusBadRequest, errorResponse(parseErr))
		return
	}

	search := r.URL.Query().Get("q")

	recipes, meta, err := h.service.List(r.Context(), userID, categoryID, search, page, limit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPage), errors.Is(err, service.ErrInvalidLimit):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrNoRecipeMatches):
			writeJSON(w, http.StatusNotFound, errorResponse(fmt.Sprintf("recipe '%s' not found", search)))
		case errors.Is(err, service.ErrCategoryNotFound),
			errors.Is(err, service.ErrNoRecipes),
			errors.Is(err, service.ErrPageOutOfRange):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	items := make([]model.RecipeResponse, len(recipes))
	for i, rec := range recipes {
		items[i] = model.NewRecipeResponse(rec)
	}

	writeJSON(w, http.StatusOK, model.RecipeListEnvelope{
		APIResponse: model.APIResponse{Status: model.StatusSuccess},
		Recipes:     items,
		Pagination:  meta,
	})
}

// HandleCreate handles POST /category/{category_id}/recipes requests.
func (h *RecipeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusForbidden, errorResponse("unauthorized, please login or register"))
		return
	}

	categoryID, ok := categoryIDParam(w, r)
	if !ok {
		return
	}

	req := recipeRequestFromForm(r)

	recipe, err := h.service.Create(r.Context(), userID, categoryID, req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.RecipeEnvelope{
		APIResponse: successResponse("recipe added successfully"),
		Recipe:      model.NewRecipeResponse(*recipe),
	})
}

// HandleGet handles GET /category/{category_id}/recipes/{recipe_id} requests.
func (h *RecipeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusForbidden, errorResponse("unauthorized, please login or register"))
		return
	}

	categoryID, ok := categoryIDParam(w, r)
	if !ok {
		return
	}

	id, ok := recipeIDParam(w, r)
	if !ok {
		return
	}

	recipe, err := h.service.Get(r.Context(), userID, categoryID, id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.RecipeEnvelope{
		APIResponse: model.APIResponse{Status: model.StatusSuccess},
		Recipe:      model.NewRecipeResponse(*recipe),
	})
}

// HandleUpdate handles PUT /category/{category_id}/recipes/{recipe_id} requests.
func (h *RecipeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusForbidden, errorResponse("unauthorized, please login or register"))
		return
	}

	categoryID, ok := categoryIDParam(w, r)
	if !ok {
		return
	}

	id, ok := recipeIDParam(w, r)
	if !ok {
		return
	}

	req := recipeRequestFromForm(r)

	recipe, err := h.service.Update(r.Context(), userID, categoryID, id, req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.RecipeEnvelope{
		APIResponse: successResponse("recipe updated successfully"),
		Recipe:      model.NewRecipeResponse(*recipe),
	})
}

// HandleDelete handles DELETE /category/{category_id}/recipes/{recipe_id} requests.
func (h *RecipeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusForbidden, errorResponse("unauthorized, please login or register"))
		return
	}

	categoryID, ok := categoryIDParam(w, r)
	if !ok {
		return
	}

	id, ok := recipeIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, categoryID, id); err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse("recipe deleted successfully"))
}

func (h *RecipeHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrRecipeFieldsRequired),
		errors.Is(err, service.ErrRecipeNameTooLong),
		errors.Is(err, service.ErrRecipeFieldTooLong):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrRecipeExists):
		writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
	case errors.Is(err, service.ErrCategoryNotFound), errors.Is(err, service.ErrRecipeNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}

func recipeRequestFromForm(r *http.Request) model.RecipeRequest {
	return model.RecipeRequest{
		Name:        r.PostFormValue("name"),
		Time:        r.PostFormValue("time"),
		Ingredients: r.PostFormValue("ingredients"),
		Direction:   r.PostFormValue("direction"),
	}
}

// recipeIDParam parses the recipe_id URL parameter, writing a 400 response
// when it is not a positive integer.
func recipeIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "recipe_id"), 10, 64)
	if err != nil || id < 1 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid recipe id"))
		return 0, false
	}
	return id, true
}
