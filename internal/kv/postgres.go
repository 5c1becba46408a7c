// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package kv

import (
	"context"
	"database/sql"
	"fmt"
)

// Postgres is a Store backed by the snapshots table managed by the
// database package. Each slot is one row, upserted on write.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns a slot store over an already-connected and
// migrated database handle. The store takes ownership of db; Close
// closes it.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Get reads a slot row. A missing row is reported as ok=false.
func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.db.QueryRowContext(ctx,
		`SELECT value FROM snapshots WHERE slot = $1`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("snapshot get %s: %w", key, err)
	}
	return value, true, nil
}

// Set upserts a slot row.
func (p *Postgres) Set(ctx context.Context, key, value string) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO snapshots (slot, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (slot) DO UPDATE SET value = $2, updated_at = NOW()
	`, key, value)
	if err != nil {
		return fmt.Errorf("snapshot set %s: %w", key, err)
	}
	return nil
}

// Delete removes a slot row. Deleting a missing slot is a no-op.
func (p *Postgres) Delete(ctx context.Context, key string) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM snapshots WHERE slot = $1`, key)
	if err != nil {
		return fmt.Errorf("snapshot delete %s: %w", key, err)
	}
	return nil
}

// Close closes the database handle.
func (p *Postgres) Close() error { return p.db.Close() }
