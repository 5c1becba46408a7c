// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"inkwell/internal/blog"
)

// Tag management has no storage of its own. Tags live on articles, so
// rename, merge and delete are sweeps that rewrite the tag list of every
// affected article through the regular update path.

// ListTags returns the derived tag index sorted by usage, busiest first.
func (h *Admin) ListTags(w http.ResponseWriter, r *http.Request) {
	tags := h.blog.AllTags()
	sort.SliceStable(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Name < tags[j].Name
	})
	respondJSON(w, http.StatusOK, tags)
}

type renameTagRequest struct {
	Name    string `json:"name"`
	NewName string `json:"newName"`
}

// RenameTag replaces a tag across every article that carries it. The
// new name must not collide with an existing tag; merging is a separate,
// deliberate operation.
func (h *Admin) RenameTag(w http.ResponseWriter, r *http.Request) {
	var req renameTagRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	newName := strings.TrimSpace(req.NewName)
	if req.Name == "" || newName == "" {
		respondError(w, http.StatusBadRequest, "name and newName are required")
		return
	}
	if err := validateLen("newName", newName, maxTagLen); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if newName == req.Name {
		respondJSON(w, http.StatusOK, map[string]int{"updated": 0})
		return
	}
	if h.tagExists(newName) {
		respondError(w, http.StatusConflict, "a tag with that name already exists")
		return
	}
	updated := h.rewriteTag(r, req.Name, func(tags []string) []string {
		return replaceTag(tags, req.Name, newName)
	})
	respondJSON(w, http.StatusOK, map[string]int{"updated": updated})
}

type mergeTagsRequest struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// MergeTags folds the source tag into the target. Articles that already
// carry both end up with a single copy of the target.
func (h *Admin) MergeTags(w http.ResponseWriter, r *http.Request) {
	var req mergeTagsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Source == "" || req.Target == "" {
		respondError(w, http.StatusBadRequest, "source and target are required")
		return
	}
	if req.Source == req.Target {
		respondError(w, http.StatusBadRequest, "source and target are the same tag")
		return
	}
	updated := h.rewriteTag(r, req.Source, func(tags []string) []string {
		return replaceTag(tags, req.Source, req.Target)
	})
	respondJSON(w, http.StatusOK, map[string]int{"updated": updated})
}

type deleteTagRequest struct {
	Name string `json:"name"`
}

// DeleteTag strips the tag from every article. The tag disappears from
// the index on its own once no published article carries it.
func (h *Admin) DeleteTag(w http.ResponseWriter, r *http.Request) {
	var req deleteTagRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	updated := h.rewriteTag(r, req.Name, func(tags []string) []string {
		return removeTag(tags, req.Name)
	})
	respondJSON(w, http.StatusOK, map[string]int{"updated": updated})
}

// rewriteTag applies fn to the tag list of every article carrying the
// tag, drafts included, and returns how many articles were touched.
func (h *Admin) rewriteTag(r *http.Request, tag string, fn func([]string) []string) int {
	affected := h.articlesWithTag(tag)
	for _, a := range affected {
		tags := fn(a.Tags)
		if _, err := h.blog.UpdateArticle(r.Context(), a.ID, blog.ArticlePatch{Tags: tags}); err != nil {
			slog.Error("tag rewrite failed", "article", a.ID, "tag", tag, "error", err)
		}
	}
	return len(affected)
}

// tagExists reports whether any article, draft or published, carries
// the tag. Exact match, same as the index.
func (h *Admin) tagExists(name string) bool {
	for _, a := range h.blog.Articles() {
		if a.HasTag(name) {
			return true
		}
	}
	return false
}

// replaceTag swaps old for new in place, keeping list order, and drops
// the duplicate if new was already present.
func replaceTag(tags []string, old, new string) []string {
	out := make([]string, 0, len(tags))
	seen := false
	for _, t := range tags {
		if t == old {
			t = new
		}
		if t == new {
			if seen {
				continue
			}
			seen = true
		}
		out = append(out, t)
	}
	return out
}

func removeTag(tags []string, name string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != name {
			out = append(out, t)
		}
	}
	return out
}
