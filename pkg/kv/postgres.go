package kv

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres implements Store on a single hive_kv table, for deployments that
// already run Postgres and don't want a second stateful service. The schema
// is applied by internal/migrate.
type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(db *pgxpool.Pool) *Postgres { return &Postgres{db: db} }

func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	var val string
	err := p.db.QueryRow(ctx, `SELECT value FROM hive_kv WHERE key = $1`, key).Scan(&val)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

func (p *Postgres) Set(ctx context.Context, key string, val string) error {
	_, err := p.db.Exec(ctx, `
		INSERT INTO hive_kv (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, key, val)
	return err
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	_, err := p.db.Exec(ctx, `DELETE FROM hive_kv WHERE key = $1`, key)
	return err
}

func (p *Postgres) DeletePrefix(ctx context.Context, prefix string) error {
	_, err := p.db.Exec(ctx, `DELETE FROM hive_kv WHERE key LIKE $1 || '%'`, prefix)
	return err
}
