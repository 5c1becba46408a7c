// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/blog"
	"inkwell/internal/models"
)

// Admin serves the authenticated management API.
type Admin struct {
	blog *blog.Store
}

func NewAdmin(store *blog.Store) *Admin {
	return &Admin{blog: store}
}

// Dashboard returns the counters the admin front page shows.
func (h *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	articles := h.blog.Articles()
	published := 0
	for _, a := range articles {
		if a.Published {
			published++
		}
	}
	respondJSON(w, http.StatusOK, map[string]int{
		"articles":   len(articles),
		"published":  published,
		"drafts":     len(articles) - published,
		"categories": len(h.blog.Categories()),
		"tags":       len(h.blog.AllTags()),
	})
}

// --- categories ---

func (h *Admin) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.blog.Categories())
}

func (h *Admin) CategoryTree(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.blog.CategoryTree())
}

type categoryRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Color       string  `json:"color"`
	ParentID    *string `json:"parentId"`
	Order       int     `json:"order"`
}

func (cr *categoryRequest) validate() error {
	if err := validateRequired("name", cr.Name); err != nil {
		return err
	}
	if err := validateLen("name", cr.Name, maxNameLen); err != nil {
		return err
	}
	return validateLen("description", cr.Description, maxDescriptionLen)
}

func (h *Admin) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	cat := h.blog.AddCategory(r.Context(), blog.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		ParentID:    req.ParentID,
		Order:       req.Order,
	})
	respondJSON(w, http.StatusCreated, cat)
}

type categoryPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	ParentID    *string `json:"parentId"`
	Order       *int    `json:"order"`
}

func (h *Admin) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req categoryPatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name != nil {
		if err := validateRequired("name", *req.Name); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := validateLen("name", *req.Name, maxNameLen); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Description != nil {
		if err := validateLen("description", *req.Description, maxDescriptionLen); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	cat, err := h.blog.UpdateCategory(r.Context(), id, blog.CategoryPatch{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		ParentID:    req.ParentID,
		Order:       req.Order,
	})
	if err != nil {
		respondBlogError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cat)
}

// CanDeleteCategory lets the console grey out the delete action before
// the user tries it.
func (h *Admin) CanDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if h.blog.Category(id) == nil {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{
		"canDelete": h.blog.CanDeleteCategory(id),
	})
}

func (h *Admin) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.blog.DeleteCategory(r.Context(), id); err != nil {
		respondBlogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type moveCategoryRequest struct {
	ParentID *string `json:"parentId"`
	Order    *int    `json:"order"`
}

func (h *Admin) MoveCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req moveCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.blog.MoveCategory(r.Context(), id, req.ParentID, req.Order); err != nil {
		respondBlogError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.blog.Category(id))
}

// --- articles ---

// ListArticles returns every article, drafts included, newest edits first.
func (h *Admin) ListArticles(w http.ResponseWriter, r *http.Request) {
	articles := h.blog.Articles()
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].UpdatedAt.After(articles[j].UpdatedAt)
	})
	respondJSON(w, http.StatusOK, articles)
}

func (h *Admin) GetArticle(w http.ResponseWriter, r *http.Request) {
	article := h.blog.Article(chi.URLParam(r, "id"))
	if article == nil {
		respondError(w, http.StatusNotFound, "article not found")
		return
	}
	respondJSON(w, http.StatusOK, article)
}

type articleRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Excerpt    string   `json:"excerpt"`
	CategoryID string   `json:"categoryId"`
	Tags       []string `json:"tags"`
	ImageURL   string   `json:"imageUrl"`
	Author     string   `json:"author"`
	Published  bool     `json:"published"`
}

func (ar *articleRequest) validate() error {
	if err := validateRequired("title", ar.Title); err != nil {
		return err
	}
	if err := validateLen("title", ar.Title, maxTitleLen); err != nil {
		return err
	}
	if err := validateRequired("categoryId", ar.CategoryID); err != nil {
		return err
	}
	if err := validateLen("content", ar.Content, maxContentLen); err != nil {
		return err
	}
	if err := validateLen("excerpt", ar.Excerpt, maxExcerptLen); err != nil {
		return err
	}
	if err := validateLen("imageUrl", ar.ImageURL, maxURLLen); err != nil {
		return err
	}
	return validateTags(ar.Tags)
}

func (h *Admin) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req articleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	article, err := h.blog.AddArticle(r.Context(), blog.ArticleInput{
		Title:      req.Title,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		CategoryID: req.CategoryID,
		Tags:       req.Tags,
		ImageURL:   req.ImageURL,
		Author:     req.Author,
		Published:  req.Published,
	})
	if err != nil {
		respondBlogError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, article)
}

type articlePatchRequest struct {
	Title      *string  `json:"title"`
	Content    *string  `json:"content"`
	Excerpt    *string  `json:"excerpt"`
	CategoryID *string  `json:"categoryId"`
	Tags       []string `json:"tags"`
	ImageURL   *string  `json:"imageUrl"`
	Author     *string  `json:"author"`
	Published  *bool    `json:"published"`
}

func (h *Admin) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req articlePatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title != nil {
		if err := validateLen("title", *req.Title, maxTitleLen); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Tags != nil {
		if err := validateTags(req.Tags); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	article, err := h.blog.UpdateArticle(r.Context(), id, blog.ArticlePatch{
		Title:      req.Title,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		CategoryID: req.CategoryID,
		Tags:       req.Tags,
		ImageURL:   req.ImageURL,
		Author:     req.Author,
		Published:  req.Published,
	})
	if err != nil {
		respondBlogError(w, err)
		return
	}
	if article == nil {
		// Unknown id is not an error for article updates; report it to
		// the API client anyway so stale admin views get a clear signal.
		respondError(w, http.StatusNotFound, "article not found")
		return
	}
	respondJSON(w, http.StatusOK, article)
}

func (h *Admin) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	h.blog.DeleteArticle(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// articlesWithTag collects every article, draft or published, carrying
// the exact tag. Tag management must sweep drafts too, or a renamed tag
// would resurface when a draft is published.
func (h *Admin) articlesWithTag(tag string) []models.Article {
	var out []models.Article
	for _, a := range h.blog.Articles() {
		if a.HasTag(tag) {
			out = append(out, a)
		}
	}
	return out
}
