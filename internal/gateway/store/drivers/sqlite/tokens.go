package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/darkaihq/darkgate/internal/gateway/domain"
)

type accessTokensRepo struct {
	db *sql.DB
}

func (r *accessTokensRepo) CreateAccessToken(ctx context.Context, t domain.AccessToken) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO access_tokens (jti, client_id, issued_at, expires_at, revoked)
		VALUES (?, ?, ?, ?, ?)`,
		t.JTI, t.ClientID, t.IssuedAt.UTC(), t.ExpiresAt.UTC(), t.Revoked,
	)
	return err
}

func (r *accessTokensRepo) GetAccessToken(ctx context.Context, jti string) (domain.AccessToken, error) {
	var t domain.AccessToken
	err := r.db.QueryRowContext(ctx, `
		SELECT jti, client_id, issued_at, expires_at, revoked
		FROM access_tokens WHERE jti = ?`, jti).
		Scan(&t.JTI, &t.ClientID, &t.IssuedAt, &t.ExpiresAt, &t.Revoked)
	if err != nil {
		return domain.AccessToken{}, mapNotFound(err)
	}
	return t, nil
}

func (r *accessTokensRepo) RevokeAccessToken(ctx context.Context, jti string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE access_tokens SET revoked = 1 WHERE jti = ?`, jti)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteExpiredBefore prunes token records whose expiry predates cutoff.
// Run periodically by housekeeping so the table doesn't grow unbounded.
func (r *accessTokensRepo) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM access_tokens WHERE expires_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
