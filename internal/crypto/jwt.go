package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrTokenExpired marks a well-formed, correctly signed token whose
	// expiry has passed. Callers surface a different message for this case.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers every other verification failure: bad
	// signature, malformed structure, wrong audience or purpose.
	ErrTokenInvalid = errors.New("invalid token")
)

const (
	issuer         = "yummyrecipes"
	audienceAccess = "yummyrecipes-api"
	audienceReset  = "yummyrecipes-reset"
	purposeReset   = "password-reset"
)

// Claims represents the JWT claims for both access and reset tokens.
// Access tokens carry UserID; reset tokens carry Email and Purpose.
type Claims struct {
	jwt.RegisteredClaims
	UserID  int64  `json:"user_id,omitempty"`
	Email   string `json:"email,omitempty"`
	Purpose string `json:"purpose,omitempty"`
}

// GenerateAccessToken creates a signed bearer token for the given user.
// Each token carries a unique jti so that two tokens minted for the same
// user in the same second are still distinct strings; revocation is by
// exact token value, so identical strings would be revoked together.
func GenerateAccessToken(userID int64, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audienceAccess},
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateResetToken creates a short-lived signed token authorizing a
// password change for the embedded email. Reset tokens use a distinct
// audience and purpose so they are never interchangeable with bearer
// tokens.
func GenerateResetToken(email, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audienceReset},
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		Email:   email,
		Purpose: purposeReset,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateAccessToken parses and verifies a bearer token, returning its
// claims. Expiry failures return ErrTokenExpired; everything else returns
// ErrTokenInvalid.
func ValidateAccessToken(tokenString, secret string) (*Claims, error) {
	return validate(tokenString, secret, audienceAccess)
}

// ValidateResetToken parses and verifies a password-reset token, returning
// the embedded email.
func ValidateResetToken(tokenString, secret string) (*Claims, error) {
	claims, err := validate(tokenString, secret, audienceReset)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != purposeReset || claims.Email == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func validate(tokenString, secret, audience string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(issuer), jwt.WithAudience(audience))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// HashToken computes the SHA-256 hash of a token string in hex form.
// The revocation ledger stores hashes rather than raw tokens.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
