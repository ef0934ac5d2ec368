package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/yummyrecipes/yummyrecipes-go/internal/crypto"
	"github.com/yummyrecipes/yummyrecipes-go/internal/model"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	tokenKey  contextKey = "token"
)

// RevocationChecker answers whether an exact token string has been revoked.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// JWTAuth returns middleware that gates every protected endpoint: it
// extracts the bearer token, verifies signature and expiry, consults the
// revocation ledger, and injects the authenticated user into the request
// context. Each failure mode rejects with its own message so clients can
// tell an expired session from a bad token.
func JWTAuth(secret string, revoked RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusForbidden, "unauthorized, please login or register")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusForbidden, "missing bearer token")
				return
			}

			claims, err := crypto.ValidateAccessToken(token, secret)
			if err != nil {
				if errors.Is(err, crypto.ErrTokenExpired) {
					writeJSONError(w, http.StatusForbidden, "expired token, please login again")
					return
				}
				writeJSONError(w, http.StatusForbidden, "invalid token, please login")
				return
			}

			isRevoked, err := revoked.IsRevoked(r.Context(), token)
			if err != nil {
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			if isRevoked {
				writeJSONError(w, http.StatusForbidden, "session not available, please login")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			ctx = context.WithValue(ctx, tokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// TokenFromContext extracts the raw bearer token from the request context.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.APIResponse{Message: msg, Status: model.StatusError})
}
