package model

// Response statuses used by every API envelope.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the base envelope carried by every response body.
type APIResponse struct {
	Message string `json:"message,omitempty"`
	Status  string `json:"status"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	APIResponse
	JWTToken string `json:"jwt_token"`
}

// CategoryEnvelope wraps a single category payload.
type CategoryEnvelope struct {
	APIResponse
	Category CategoryResponse `json:"category"`
}

// CategoryListEnvelope wraps a paginated category listing.
type CategoryListEnvelope struct {
	APIResponse
	Categories []CategoryResponse `json:"categories"`
	Pagination Pagination         `json:"pagination"`
}

// RecipeEnvelope wraps a single recipe payload.
type RecipeEnvelope struct {
	APIResponse
	Recipe RecipeResponse `json:"recipe"`
}

// RecipeListEnvelope wraps a paginated recipe listing.
type RecipeListEnvelope struct {
	APIResponse
	Recipes    []RecipeResponse `json:"recipes"`
	Pagination Pagination       `json:"pagination"`
}

// Pagination describes the page window of a listing response.
// NextPage and PrevPage are zero when there is no such page.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	NextPage   int  `json:"next_page"`
	PrevPage   int  `json:"prev_page"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NewPagination computes the pagination metadata for a listing.
func NewPagination(page, limit, totalItems int) Pagination {
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}

	p := Pagination{
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
	if page > 1 {
		p.PrevPage = page - 1
		p.HasPrev = true
	}
	if page < totalPages {
		p.NextPage = page + 1
		p.HasNext = true
	}
	return p
}
