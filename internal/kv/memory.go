// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package kv

import (
	"context"
	"sync"
)

// Memory is an in-process Store. Data lives only for the lifetime of the
// process, which is fine for development and required for unit tests.
type Memory struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewMemory returns an empty in-memory slot store.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string]string)}
}

// Get returns the value of a slot, with ok=false if it was never set.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.slots[key]
	return v, ok, nil
}

// Set writes a slot value, replacing any previous value.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = value
	return nil
}

// Delete removes a slot. Deleting a missing slot is a no-op.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() error { return nil }
