// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"context"
	"fmt"
	"sort"

	"inkwell/internal/models"
)

// CategoryInput carries the caller-supplied fields for a new category.
// ParentID nil creates a main category; set, a sub-category. The parent
// id is not validated here; callers building sub-categories pick the
// parent from the existing tree.
type CategoryInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Color       string  `json:"color"`
	ParentID    *string `json:"parentId"`
	Order       int     `json:"order"`
}

// CategoryPatch is a partial category update. Nil fields are left
// unchanged. A ParentID pointing at the empty string clears the parent,
// turning the category into a main category.
type CategoryPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	ParentID    *string `json:"parentId"`
	Order       *int    `json:"order"`
}

// AddCategory creates a category with a generated id and creation
// timestamp and appends it to the collection. An unset Order defaults to
// the fallback value so new categories sort last among their siblings.
func (s *Store) AddCategory(ctx context.Context, in CategoryInput) *models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := in.Order
	if order == 0 {
		order = fallbackOrder
	}

	cat := models.Category{
		ID:          s.newID(),
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
		ParentID:    in.ParentID,
		Order:       order,
		CreatedAt:   s.now(),
	}
	s.categories = append(s.categories, cat)
	s.persistCategories(ctx)
	return &cat
}

// UpdateCategory merges the patch into the category with the given id.
// The creation timestamp is immutable. Returns ErrNotFound for an
// unknown id.
func (s *Store) UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.categoryIndex(id)
	if idx < 0 {
		return nil, fmt.Errorf("update category %s: %w", id, ErrNotFound)
	}

	cat := &s.categories[idx]
	if patch.Name != nil {
		cat.Name = *patch.Name
	}
	if patch.Description != nil {
		cat.Description = *patch.Description
	}
	if patch.Color != nil {
		cat.Color = *patch.Color
	}
	if patch.ParentID != nil {
		if *patch.ParentID == "" {
			cat.ParentID = nil
		} else {
			parent := *patch.ParentID
			cat.ParentID = &parent
		}
	}
	if patch.Order != nil {
		cat.Order = *patch.Order
	}

	s.persistCategories(ctx)
	updated := *cat
	return &updated, nil
}

// DeleteCategory removes a category. It fails closed: a category that
// still has sub-categories or directly assigned articles cannot be
// deleted, matching what the management UI checks before offering the
// action. When the guard passes, any directly referencing articles are
// cascaded (in practice there are none once the guard holds).
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.categoryIndex(id)
	if idx < 0 {
		return fmt.Errorf("delete category %s: %w", id, ErrNotFound)
	}

	if !s.canDelete(id) {
		return fmt.Errorf("delete category %s: %w", id, ErrHierarchyViolation)
	}

	s.categories = append(s.categories[:idx], s.categories[idx+1:]...)

	kept := s.articles[:0]
	removed := 0
	for _, a := range s.articles {
		if a.CategoryID == id {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	s.articles = kept

	s.persistCategories(ctx)
	if removed > 0 {
		s.persistArticles(ctx)
	}
	return nil
}

// MoveCategory reparents and/or reorders a category. A nil newParentID
// leaves the parent unchanged; pointing it at the empty string clears it.
// A nil newOrder leaves the order unchanged. Descendants are not
// touched and the new parent id is not validated; a dangling reference
// degrades to path and tree fallbacks rather than an error.
func (s *Store) MoveCategory(ctx context.Context, id string, newParentID *string, newOrder *int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.categoryIndex(id)
	if idx < 0 {
		return fmt.Errorf("move category %s: %w", id, ErrNotFound)
	}

	cat := &s.categories[idx]
	if newParentID != nil {
		if *newParentID == "" {
			cat.ParentID = nil
		} else {
			parent := *newParentID
			cat.ParentID = &parent
		}
	}
	if newOrder != nil {
		cat.Order = *newOrder
	}

	s.persistCategories(ctx)
	return nil
}

// Category returns the category with the given id, or nil if not found.
func (s *Store) Category(id string) *models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.categoryIndex(id)
	if idx < 0 {
		return nil
	}
	cat := s.categories[idx]
	return &cat
}

// MainCategories returns all root categories sorted ascending by order.
func (s *Store) MainCategories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortByOrder(s.filterCategories(func(c *models.Category) bool {
		return c.IsMain()
	}))
}

// SubCategories returns the sub-categories of the given parent, sorted
// ascending by order. With an empty parentID it returns every
// sub-category across all parents.
func (s *Store) SubCategories(parentID string) []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortByOrder(s.filterCategories(func(c *models.Category) bool {
		if c.IsMain() {
			return false
		}
		return parentID == "" || *c.ParentID == parentID
	}))
}

// CategoryTree builds the two-level display tree: main categories in
// order, each with its sub-categories in order. The second level always
// has empty children.
func (s *Store) CategoryTree() []models.CategoryNode {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mains := sortByOrder(s.filterCategories(func(c *models.Category) bool {
		return c.IsMain()
	}))

	tree := make([]models.CategoryNode, 0, len(mains))
	for _, main := range mains {
		subs := sortByOrder(s.filterCategories(func(c *models.Category) bool {
			return !c.IsMain() && *c.ParentID == main.ID
		}))

		children := make([]models.CategoryNode, 0, len(subs))
		for _, sub := range subs {
			children = append(children, models.CategoryNode{
				Category: sub,
				Children: []models.CategoryNode{},
			})
		}
		tree = append(tree, models.CategoryNode{Category: main, Children: children})
	}
	return tree
}

// CanDeleteCategory reports whether a category can be deleted: it must
// have no sub-categories and no directly assigned articles. The
// management UI calls this before offering deletion so it can explain
// why the action is blocked.
func (s *Store) CanDeleteCategory(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.canDelete(id)
}

// canDelete is CanDeleteCategory without locking, for use inside
// mutations that already hold the lock.
func (s *Store) canDelete(id string) bool {
	for i := range s.categories {
		if s.categories[i].ParentID != nil && *s.categories[i].ParentID == id {
			return false
		}
	}
	for i := range s.articles {
		if s.articles[i].CategoryID == id {
			return false
		}
	}
	return true
}

// CategoryPath returns the display path of a category: "Parent > Name"
// for sub-categories, just the name for main categories, and the empty
// string for an unknown id.
func (s *Store) CategoryPath(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.categoryIndex(id)
	if idx < 0 {
		return ""
	}
	cat := &s.categories[idx]
	if cat.ParentID == nil {
		return cat.Name
	}

	parentIdx := s.categoryIndex(*cat.ParentID)
	if parentIdx < 0 {
		// Dangling parent reference; fall back to the bare name.
		return cat.Name
	}
	return s.categories[parentIdx].Name + " > " + cat.Name
}

// categoryIndex returns the position of a category in the collection, or
// -1. Callers must hold the lock.
func (s *Store) categoryIndex(id string) int {
	for i := range s.categories {
		if s.categories[i].ID == id {
			return i
		}
	}
	return -1
}

// filterCategories copies the categories matching the predicate. Callers
// must hold the lock.
func (s *Store) filterCategories(keep func(*models.Category) bool) []models.Category {
	var out []models.Category
	for i := range s.categories {
		if keep(&s.categories[i]) {
			out = append(out, s.categories[i])
		}
	}
	return out
}

// sortByOrder sorts categories ascending by their order field, keeping
// the storage order for equal values.
func sortByOrder(cats []models.Category) []models.Category {
	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].Order < cats[j].Order
	})
	return cats
}
