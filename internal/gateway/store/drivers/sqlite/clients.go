package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/darkaihq/darkgate/internal/gateway/domain"
	"github.com/darkaihq/darkgate/internal/gateway/store"
)

type clientsRepo struct {
	db *sql.DB
}

const clientColumns = `id, name, email, api_key_hash, shared_secret, scopes,
	allowed_models, rate_limit_profile, status, created_at, updated_at`

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (`+clientColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Email, c.APIKeyHash, c.SharedSecret,
		joinList(c.Scopes), joinList(c.AllowedModels),
		c.RateLimitProfile, c.Status, now, now,
	)
	return err
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id string) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)
	return scanClient(row)
}

func (r *clientsRepo) GetClientByEmail(ctx context.Context, email string) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE email = ?`, email)
	return scanClient(row)
}

func (r *clientsRepo) UpdateClientStatus(ctx context.Context, id, status string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE clients SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *clientsRepo) UpdateClientProfile(
	ctx context.Context,
	id, name string,
	scopes, allowedModels []string,
) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE clients SET name = ?, scopes = ?, allowed_models = ?, updated_at = ?
		WHERE id = ?`,
		name, joinList(scopes), joinList(allowedModels), time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanClient(row *sql.Row) (domain.Client, error) {
	var c domain.Client
	var scopes, models string
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.APIKeyHash, &c.SharedSecret,
		&scopes, &models, &c.RateLimitProfile, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	c.Scopes = splitList(scopes)
	c.AllowedModels = splitList(models)
	return c, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
