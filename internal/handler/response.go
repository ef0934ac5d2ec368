package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/yummyrecipes/yummyrecipes-go/internal/model"
	"github.com/yummyrecipes/yummyrecipes-go/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) model.APIResponse {
	return model.APIResponse{Message: msg, Status: model.StatusError}
}

func successResponse(msg string) model.APIResponse {
	return model.APIResponse{Message: msg, Status: model.StatusSuccess}
}

// parsePageLimit reads the page and limit query parameters, applying the
// defaults when absent. Non-numeric values are rejected here; positivity
// is checked by the service.
func parsePageLimit(r *http.Request) (int, int, string) {
	page := service.DefaultPage
	limit := service.DefaultLimit

	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, "invalid page value"
		}
		page = n
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, "invalid limit value"
		}
		limit = n
	}

	return page, limit, ""
}
