package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/yummyrecipes/yummyrecipes-go/internal/crypto"
)

// RevocationRepository is the revocation ledger: an append-only record of
// tokens that must be rejected even while otherwise valid. Tokens are
// stored as SHA-256 hashes of the exact token string, so lookup remains an
// exact match on the presented value. Entries are never deleted; the
// stored expiry allows external pruning of rows that can no longer match
// a live token.
type RevocationRepository struct {
	db *sql.DB
}

// NewRevocationRepository creates a new RevocationRepository.
func NewRevocationRepository(db *sql.DB) *RevocationRepository {
	return &RevocationRepository{db: db}
}

// Revoke records a token in the ledger. Revoking the same token twice is a
// no-op.
func (r *RevocationRepository) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	query := `INSERT IGNORE INTO revoked_tokens (token_hash, expires_at) VALUES (?, ?)`

	_, err := r.db.ExecContext(ctx, query, crypto.HashToken(token), expiresAt)
	return err
}

// IsRevoked reports whether the exact token string has been revoked.
func (r *RevocationRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	query := `SELECT COUNT(*) FROM revoked_tokens WHERE token_hash = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, crypto.HashToken(token)).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}
