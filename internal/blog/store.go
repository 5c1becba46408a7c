// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package blog is the data-management core of the CMS. A Store owns the
// in-memory snapshot of categories and articles, enforces the two-level
// category hierarchy, and derives the read views (category tree, tag
// index, filtered article lists). Every mutation persists the full
// snapshot to the durable slot store; persistence failures are logged and
// never surfaced, so the in-memory state stays authoritative for the
// session.
package blog

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/kv"
	"inkwell/internal/models"
)

// Slot names in the durable store, one per collection.
const (
	slotCategories = "blog_categories"
	slotArticles   = "blog_articles"
)

// fallbackOrder is assigned when a category is created without an
// explicit sibling order, and to persisted categories that predate the
// order field. It sorts after any deliberately ordered sibling.
const fallbackOrder = 999

// Store holds the current snapshot of categories and articles. Construct
// one with New and call Load before use. Multiple independent stores can
// coexist; there is no package-level state.
type Store struct {
	mu    sync.RWMutex
	slots kv.Store
	now   func() time.Time
	newID func() string

	loaded     bool
	categories []models.Category
	articles   []models.Article
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the wall clock, for deterministic timestamps in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the id generator, for deterministic ids in tests.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// New creates a Store persisting into the given slot store. The store is
// empty until Load is called; mutations before Load are not persisted.
func New(slots kv.Store, opts ...Option) *Store {
	s := &Store{
		slots: slots,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted snapshot of both collections. A slot that is
// absent or fails to parse falls back to the built-in seed data; Load
// never fails, it only logs. After Load completes, every mutation writes
// the snapshot back.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories = loadSlot(ctx, s.slots, slotCategories, DefaultCategories())
	s.articles = loadSlot(ctx, s.slots, slotArticles, DefaultArticles())

	// Migration contract for snapshots that predate the hierarchy fields:
	// a category without an order sorts with the creation fallback. A
	// missing parentId already behaves correctly (main category).
	for i := range s.categories {
		if s.categories[i].Order == 0 {
			s.categories[i].Order = fallbackOrder
		}
	}

	s.loaded = true
	slog.Info("blog data loaded",
		"categories", len(s.categories),
		"articles", len(s.articles),
	)
}

// loadSlot reads and decodes one collection slot, falling back to the
// provided defaults when the slot is empty, unreadable, or corrupt.
func loadSlot[T any](ctx context.Context, slots kv.Store, key string, defaults []T) []T {
	raw, ok, err := slots.Get(ctx, key)
	if err != nil {
		slog.Error("slot read failed, using defaults", "slot", key, "error", err)
		return defaults
	}
	if !ok {
		return defaults
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		slog.Warn("slot contents corrupt, using defaults", "slot", key, "error", err)
		return defaults
	}
	return items
}

// persistCategories writes the category collection back to its slot.
// Must be called with the write lock held.
func (s *Store) persistCategories(ctx context.Context) {
	persistSlot(ctx, s, slotCategories, s.categories)
}

// persistArticles writes the article collection back to its slot. Must be
// called with the write lock held.
func (s *Store) persistArticles(ctx context.Context) {
	persistSlot(ctx, s, slotArticles, s.articles)
}

// persistSlot encodes and writes one collection. Skipped before the
// initial Load (to avoid clobbering an unread snapshot) and when the
// collection is empty (an empty collection is never written, preventing
// an accidental wipe). Failures are logged, never returned.
func persistSlot[T any](ctx context.Context, s *Store, key string, collection []T) {
	if !s.loaded || len(collection) == 0 {
		return
	}

	data, err := json.Marshal(collection)
	if err != nil {
		slog.Error("snapshot marshal failed", "slot", key, "error", err)
		return
	}
	if err := s.slots.Set(ctx, key, string(data)); err != nil {
		slog.Error("snapshot persist failed", "slot", key, "error", err)
	}
}

// Categories returns a copy of the full category collection, in storage
// order.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Articles returns a copy of the full article collection, drafts
// included, in storage order.
func (s *Store) Articles() []models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Article, len(s.articles))
	copy(out, s.articles)
	return out
}
