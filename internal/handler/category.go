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

// CategoryHandler handles HTTP requests for category operations.
type CategoryHandler struct {
	service *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(svc *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: svc}
}

// HandleList handles GET /category requests with optional q, page and
// limit query parameters.
func (h *CategoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusForbidden, errorResponse("unauthorized, please login or register"))
		return
	}

	page, limit, parseErr := parsePageLimit(r)
	if parseErr != "" {
		writeJSON(w, http.StatusBadRequest, errorResponse(parseErr))
		return
	}

	search := r.URL.Query().Get("q")

	categories, meta, err := h.service.List(r.Context(), userID, search, page, limit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPage), errors.Is(err, service.ErrInvalidLimit):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrNoCategoryMatches):
			writeJSON(w, http.StatusNotFound, errorResponse(fmt.Sprintf("category '%s' not found", search)))
		case errors.Is(err, service.ErrNoCategories), errors.Is(err, service.ErrPageOutOfRange):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	items := make([]model.CategoryResponse, len(categories))
	for i, c := range categories {
		items[i] = model.NewCategoryResponse(c)
	}

	writeJSON(w, http.StatusOK, model.CategoryListEnvelope{
		APIResponse: model.APIResponse{Status: model.StatusSuccess},
		Categories:  items,
		Pagination:  meta,
	})
}

// HandleCreate handles POST /category requests.
func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusForbidden, errorResponse("unauthorized, please login or register"))
		return
	}

	req := model.CategoryRequest{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("desc"),
	}

	category, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.CategoryEnvelope{
		APIResponse: successResponse("category added successfully"),
		Category:    model.NewCategoryResponse(*category),
	})
}

// HandleGet handles GET /category/{category_id} requests.
func (h *CategoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusForbidden, errorResponse("unauthorized, please login or register"))
		return
	}

	id, ok := categoryIDParam(w, r)
	if !ok {
		return
	}

	category, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.CategoryEnvelope{
		APIResponse: model.APIResponse{Status: model.StatusSuccess},
		Category:    model.NewCategoryResponse(*category),
	})
}

// HandleUpdate handles PUT /category/{category_id} requests.
func (h *CategoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusForbidden, errorResponse("unauthorized, please login or register"))
		return
	}

	id, ok := categoryIDParam(w, r)
	if !ok {
		return
	}

	req := model.CategoryRequest{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("desc"),
	}

	category, err := h.service.Update(r.Context(), userID, id, req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.CategoryEnvelope{
		APIResponse: successResponse("category updated successfully"),
		Category:    model.NewCategoryResponse(*category),
	})
}

// HandleDelete handles DELETE /category/{category_id} requests.
func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusForbidden, errorResponse("unauthorized, please login or register"))
		return
	}

	id, ok := categoryIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse("category deleted successfully"))
}

func (h *CategoryHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrCategoryFieldsRequired),
		errors.Is(err, service.ErrCategoryNameTooLong),
		errors.Is(err, service.ErrCategoryDescTooLong):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrCategoryExists):
		writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
	case errors.Is(err, service.ErrCategoryNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}

// categoryIDParam parses the category_id URL parameter, writing a 400
// response when it is not a positive integer.
func categoryIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "category_id"), 10, 64)
	if err != nil || id < 1 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid category id"))
		return 0, false
	}
	return id, true
}
