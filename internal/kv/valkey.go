// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package kv

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces blog slots in Valkey to avoid collisions with
// sessions and anything else sharing the instance.
const keyPrefix = "inkwell:"

// Valkey is a Store backed by a Valkey (Redis-compatible) instance.
// Slots are plain string keys with no expiry.
type Valkey struct {
	client *redis.Client
}

// ConnectValkey creates a Valkey-backed slot store and verifies the
// connection with a ping.
func ConnectValkey(host, port, password string) (*Valkey, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("valkey ping: %w", err)
	}

	slog.Info("valkey connected", "addr", fmt.Sprintf("%s:%s", host, port))
	return &Valkey{client: client}, nil
}

// NewValkey wraps an existing client, for callers that share one
// connection between the slot store and the session store.
func NewValkey(client *redis.Client) *Valkey {
	return &Valkey{client: client}
}

// Client exposes the underlying connection so that other Valkey-backed
// components (sessions) can reuse it.
func (v *Valkey) Client() *redis.Client { return v.client }

// Get reads a slot. A missing key is reported as ok=false, not an error.
func (v *Valkey) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := v.client.Get(ctx, keyPrefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("valkey get %s: %w", key, err)
	}
	return val, true, nil
}

// Set writes a slot value with no expiry.
func (v *Valkey) Set(ctx context.Context, key, value string) error {
	if err := v.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("valkey set %s: %w", key, err)
	}
	return nil
}

// Delete removes a slot. Deleting a missing slot is a no-op.
func (v *Valkey) Delete(ctx context.Context, key string) error {
	if err := v.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("valkey delete %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying client connection.
func (v *Valkey) Close() error { return v.client.Close() }
