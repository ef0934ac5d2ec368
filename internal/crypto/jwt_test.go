package crypto

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAccessToken(t *testing.T) {
	token, err := GenerateAccessToken(42, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateAccessToken() returned empty string")
	}
}

func TestGenerateAccessTokenUniqueStrings(t *testing.T) {
	// Two tokens for the same user minted back to back must differ, since
	// revocation is by exact token value.
	t1, err := GenerateAccessToken(42, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken() unexpected error: %v", err)
	}
	t2, err := GenerateAccessToken(42, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken() unexpected error: %v", err)
	}
	if t1 == t2 {
		t.Error("GenerateAccessToken() produced identical token strings")
	}
}

func TestValidateAccessTokenValid(t *testing.T) {
	secret := "test-secret"
	userID := int64(42)

	token, err := GenerateAccessToken(userID, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken() unexpected error: %v", err)
	}

	claims, err := ValidateAccessToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateAccessToken() unexpected error: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("ValidateAccessToken() UserID = %d, want %d", claims.UserID, userID)
	}
}

func TestValidateAccessTokenMalformed(t *testing.T) {
	_, err := ValidateAccessToken("not-a-valid-token", "test-secret")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ValidateAccessToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateAccessTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(42, "correct-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken() unexpected error: %v", err)
	}

	_, err = ValidateAccessToken(token, "wrong-secret")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ValidateAccessToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateAccessTokenExpired(t *testing.T) {
	token, err := GenerateAccessToken(42, "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken() unexpected error: %v", err)
	}

	_, err = ValidateAccessToken(token, "test-secret")
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("ValidateAccessToken() error = %v, want ErrTokenExpired", err)
	}
}

func TestValidateAccessTokenWrongIssuer(t *testing.T) {
	secret := "test-secret"

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "wrong-issuer",
			Audience:  jwt.ClaimStrings{audienceAccess},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: 42,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	_, err = ValidateAccessToken(tokenString, secret)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ValidateAccessToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestResetTokenNotValidAsAccessToken(t *testing.T) {
	secret := "test-secret"

	reset, err := GenerateResetToken("alice@example.com", secret, 10*time.Minute)
	if err != nil {
		t.Fatalf("GenerateResetToken() unexpected error: %v", err)
	}

	_, err = ValidateAccessToken(reset, secret)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ValidateAccessToken() accepted a reset token, error = %v", err)
	}
}

func TestAccessTokenNotValidAsResetToken(t *testing.T) {
	secret := "test-secret"

	access, err := GenerateAccessToken(42, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken() unexpected error: %v", err)
	}

	_, err = ValidateResetToken(access, secret)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ValidateResetToken() accepted an access token, error = %v", err)
	}
}

func TestValidateResetTokenValid(t *testing.T) {
	secret := "test-secret"
	email := "alice@example.com"

	token, err := GenerateResetToken(email, secret, 10*time.Minute)
	if err != nil {
		t.Fatalf("GenerateResetToken() unexpected error: %v", err)
	}

	claims, err := ValidateResetToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateResetToken() unexpected error: %v", err)
	}
	if claims.Email != email {
		t.Errorf("ValidateResetToken() Email = %q, want %q", claims.Email, email)
	}
}

func TestValidateResetTokenExpired(t *testing.T) {
	token, err := GenerateResetToken("alice@example.com", "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateResetToken() unexpected error: %v", err)
	}

	_, err = ValidateResetToken(token, "test-secret")
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("ValidateResetToken() error = %v, want ErrTokenExpired", err)
	}
}

func TestHashToken(t *testing.T) {
	h1 := HashToken("some-token")
	h2 := HashToken("some-token")
	if h1 != h2 {
		t.Error("HashToken() not deterministic")
	}
	if len(h1) != 64 {
		t.Errorf("HashToken() length = %d, want 64", len(h1))
	}
	if HashToken("other-token") == h1 {
		t.Error("HashToken() produced the same hash for different tokens")
	}
}
