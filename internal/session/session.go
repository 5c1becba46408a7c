// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package session provides HTTP session management on top of the slot
// store. Sessions are identified by a secure cookie and stored as JSON;
// expiry is carried in the payload since not every backend supports TTLs.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"inkwell/internal/kv"
)

const (
	// CookieName is the name of the session cookie sent to the browser.
	CookieName = "iw_session"

	// DefaultTTL is how long a session lives before expiry.
	DefaultTTL = 24 * time.Hour

	// keyPrefix namespaces session keys to avoid collisions with the
	// blog snapshot slots.
	keyPrefix = "session:"

	// idLength is the byte length of the random session ID (32 bytes =
	// 64 hex chars).
	idLength = 32
)

// Data holds the session payload. It records the authenticated admin's
// identity and whether the second authentication factor was completed.
type Data struct {
	Email     string    `json:"email"`
	TwoFADone bool      `json:"twoFaDone"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Store manages session lifecycle in the slot store.
type Store struct {
	slots         kv.Store
	ttl           time.Duration
	secureCookies bool
}

// NewStore creates a session store over the given backend. secureCookies
// marks cookies HTTPS-only and should be true outside development.
func NewStore(slots kv.Store, secureCookies bool) *Store {
	return &Store{
		slots:         slots,
		ttl:           DefaultTTL,
		secureCookies: secureCookies,
	}
}

// Create generates a new session, stores it, and sets the session cookie
// on the response. Returns the session ID.
func (s *Store) Create(ctx context.Context, w http.ResponseWriter, data *Data) (string, error) {
	id, err := generateID()
	if err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}

	now := time.Now()
	data.CreatedAt = now
	data.ExpiresAt = now.Add(s.ttl)

	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("session marshal: %w", err)
	}

	if err := s.slots.Set(ctx, keyPrefix+id, string(payload)); err != nil {
		return "", fmt.Errorf("session store: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})

	return id, nil
}

// Get retrieves session data using the session ID from the request
// cookie. Returns nil for a missing or expired session; neither is an
// error.
func (s *Store) Get(ctx context.Context, r *http.Request) (*Data, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, nil // No cookie = no session.
	}

	payload, ok, err := s.slots.Get(ctx, keyPrefix+cookie.Value)
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var data Data
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, fmt.Errorf("session unmarshal: %w", err)
	}

	if time.Now().After(data.ExpiresAt) {
		// Lazy expiry for backends without native TTLs.
		s.slots.Delete(ctx, keyPrefix+cookie.Value)
		return nil, nil
	}

	return &data, nil
}

// Update replaces the session data without changing the session ID or
// cookie. The expiry window restarts.
func (s *Store) Update(ctx context.Context, r *http.Request, data *Data) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return fmt.Errorf("session update: no cookie")
	}

	data.ExpiresAt = time.Now().Add(s.ttl)

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}

	if err := s.slots.Set(ctx, keyPrefix+cookie.Value, string(payload)); err != nil {
		return fmt.Errorf("session update: %w", err)
	}

	return nil
}

// Destroy removes the session and clears the cookie.
func (s *Store) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil // No cookie, nothing to destroy.
	}

	s.slots.Delete(ctx, keyPrefix+cookie.Value)

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	return nil
}

// generateID creates a cryptographically random session identifier.
func generateID() (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
