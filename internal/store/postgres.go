package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Postgres persists snapshots in a single key/value table
type Postgres struct {
	db *sql.DB
}

// NewPostgres creates the snapshot table if needed and returns the store
func NewPostgres(db *sql.DB) (*Postgres, error) {
	query := `
		CREATE TABLE IF NOT EXISTS local_snapshots (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := db.Exec(query); err != nil {
		return nil, fmt.Errorf("failed to create snapshot table: %w", err)
	}
	return &Postgres{db: db}, nil
}

// Load retrieves the value under key, or nil when absent
func (p *Postgres) Load(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM local_snapshots WHERE key = $1`

	var value string
	err := p.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}

	return []byte(value), nil
}

// Save replaces the value under key
func (p *Postgres) Save(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO local_snapshots (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`

	if _, err := p.db.ExecContext(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}

	return nil
}
