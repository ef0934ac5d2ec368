package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yummyrecipes/yummyrecipes-go/internal/crypto"
	"github.com/yummyrecipes/yummyrecipes-go/internal/model"
	"github.com/yummyrecipes/yummyrecipes-go/internal/repository"
)

var (
	ErrFieldsRequired     = errors.New("please fill all fields")
	ErrInvalidEmail       = errors.New("please enter a valid email address")
	ErrInvalidUsername    = errors.New("username must not contain special characters")
	ErrUsernameTooLong    = errors.New("username must be at most 50 characters")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrEmailTaken         = errors.New("user already exists, please login")
	ErrInvalidCredentials = errors.New("invalid email or password, please try again")
	ErrUserNotFound       = errors.New("user email does not exist")
	ErrResetTokenInvalid  = errors.New("invalid reset token")
	ErrResetTokenExpired  = errors.New("reset token expired, please request a new one")
	ErrResetTokenUsed     = errors.New("reset token already used, please request a new one")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9_.]+@[a-zA-Z0-9-]+\.[a-z]+$`)

// usernameDisallowed is the set of punctuation and symbol characters a
// username may not contain.
const usernameDisallowed = "!\"#$%&'()*+,/:;<=>?@[\\]^`{|}~"

// ResetMailer delivers password-reset links out-of-band.
type ResetMailer interface {
	SendPasswordReset(to, token string) error
}

// AuthService handles the credential lifecycle: registration, login,
// logout and password reset.
type AuthService struct {
	users       *repository.UserRepository
	ledger      *repository.RevocationRepository
	mailer      ResetMailer
	jwtSecret   string
	jwtExpiry   time.Duration
	resetExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *repository.UserRepository, ledger *repository.RevocationRepository, mailer ResetMailer, secret string, jwtExpiry, resetExpiry time.Duration) *AuthService {
	return &AuthService{
		users:       users,
		ledger:      ledger,
		mailer:      mailer,
		jwtSecret:   secret,
		jwtExpiry:   jwtExpiry,
		resetExpiry: resetExpiry,
	}
}

// Register validates the registration fields and creates the account with
// a salted password hash. It does not log the user in.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) error {
	email := strings.TrimSpace(req.Email)
	username := strings.TrimSpace(req.Username)

	if email == "" || username == "" || req.Password == "" {
		return ErrFieldsRequired
	}
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	if len(username) > 50 {
		return ErrUsernameTooLong
	}
	if strings.ContainsAny(username, usernameDisallowed) {
		return ErrInvalidUsername
	}
	if len(req.Password) < 6 {
		return ErrPasswordTooShort
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		PublicID:     uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return err
	}

	return nil
}

// Login verifies the credentials and issues a bearer token. Unknown email
// and wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return "", err
	}
	if !match {
		return "", ErrInvalidCredentials
	}

	return crypto.GenerateAccessToken(user.ID, s.jwtSecret, s.jwtExpiry)
}

// Logout records the presented token in the revocation ledger. Only this
// exact token is invalidated; other sessions of the same user stay live.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	expiresAt := time.Now().Add(s.jwtExpiry)
	if claims, err := crypto.ValidateAccessToken(token, s.jwtSecret); err == nil && claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return s.ledger.Revoke(ctx, token, expiresAt)
}

// RequestPasswordReset mints a short-lived reset token for the account and
// dispatches the reset link by email. Delivery is fire-and-forget: a send
// failure is logged, not surfaced to the caller.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	token, err := crypto.GenerateResetToken(user.Email, s.jwtSecret, s.resetExpiry)
	if err != nil {
		return err
	}

	go func() {
		if err := s.mailer.SendPasswordReset(user.Email, token); err != nil {
			slog.Error("sending password reset email failed", "email", user.Email, "error", err)
		}
	}()

	return nil
}

// ResetPassword verifies a reset token and overwrites the password hash of
// the embedded email. A token is single-use: after a successful reset it
// is recorded in the revocation ledger and rejected on replay.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}

	used, err := s.ledger.IsRevoked(ctx, token)
	if err != nil {
		return err
	}
	if used {
		return ErrResetTokenUsed
	}

	claims, err := crypto.ValidateResetToken(token, s.jwtSecret)
	if err != nil {
		if errors.Is(err, crypto.ErrTokenExpired) {
			return ErrResetTokenExpired
		}
		return ErrResetTokenInvalid
	}

	hash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, claims.Email, hash); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.ledger.Revoke(ctx, token, claims.ExpiresAt.Time); err != nil {
		return err
	}

	return nil
}
