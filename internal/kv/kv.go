// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package kv provides the durable slot store the blog core persists its
// snapshots into. A slot is a named string value; the blog store keeps one
// slot per collection. Three backends are available: an in-process map
// (development and tests), Valkey, and PostgreSQL.
package kv

import "context"

// Store is a durable key-value slot store. Get reports ok=false when the
// slot has never been written; that is not an error. Implementations must
// be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
