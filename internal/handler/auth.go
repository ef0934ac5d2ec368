package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yummyrecipes/yummyrecipes-go/internal/middleware"
	"github.com/yummyrecipes/yummyrecipes-go/internal/model"
	"github.com/yummyrecipes/yummyrecipes-go/internal/service"
)

// AuthHandler handles HTTP requests for the credential lifecycle.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /auth/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	req := model.RegisterRequest{
		Email:    r.PostFormValue("email"),
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	if err := h.service.Register(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, service.ErrFieldsRequired),
			errors.Is(err, service.ErrInvalidEmail),
			errors.Is(err, service.ErrInvalidUsername),
			errors.Is(err, service.ErrUsernameTooLong),
			errors.Is(err, service.ErrPasswordTooShort):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, successResponse("you registered successfully, please log in"))
}

// HandleLogin handles POST /auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	req := model.LoginRequest{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	token, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.LoginResponse{
		APIResponse: successResponse("you logged in successfully"),
		JWTToken:    token,
	})
}

// HandleLogout handles POST /auth/logout requests. The authorization gate
// has already validated the token; logout only records it in the ledger.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusForbidden, errorResponse("unauthorized, please login or register"))
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, successResponse("you logged out successfully"))
}

// HandleResetPassword handles POST /auth/reset-password requests.
func (h *AuthHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")

	if err := h.service.RequestPasswordReset(r.Context(), email); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, successResponse("password reset link sent to your email"))
}

// HandleNewPassword handles POST /auth/new-password/{reset_token} requests.
func (h *AuthHandler) HandleNewPassword(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "reset_token")
	newPassword := r.PostFormValue("newpassword")

	if err := h.service.ResetPassword(r.Context(), token, newPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrResetTokenInvalid),
			errors.Is(err, service.ErrResetTokenExpired),
			errors.Is(err, service.ErrResetTokenUsed):
			writeJSON(w, http.StatusForbidden, errorResponse(err.Error()))
		case errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, successResponse("password reset, you can now login with your new password"))
}
