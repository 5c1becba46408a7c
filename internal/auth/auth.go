// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package auth manages the single admin account that gates the
// management console. The account record lives in its own slot of the
// durable store: a bcrypt password hash plus the optional TOTP secret.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"inkwell/internal/kv"
)

// adminSlot is the durable-store slot holding the admin account record.
const adminSlot = "blog_admin"

// Admin is the stored admin account.
type Admin struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	TOTPSecret   string `json:"totpSecret,omitempty"`
	TOTPEnabled  bool   `json:"totpEnabled"`
}

// Needs2FASetup reports whether the admin still has to enrol a TOTP
// device before the console unlocks.
func (a *Admin) Needs2FASetup() bool {
	return !a.TOTPEnabled
}

// Store reads and writes the admin account record.
type Store struct {
	slots kv.Store
}

// NewStore returns an account store over the given backend.
func NewStore(slots kv.Store) *Store {
	return &Store{slots: slots}
}

// Seed creates the default admin account if none exists. The default
// credentials are development-only; the admin is prompted to set up 2FA
// on first login.
func (s *Store) Seed(ctx context.Context, email, password string) error {
	_, ok, err := s.slots.Get(ctx, adminSlot)
	if err != nil {
		return fmt.Errorf("seed check admin: %w", err)
	}
	if ok {
		slog.Info("admin account already present, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	admin := &Admin{Email: email, PasswordHash: string(hash)}
	if err := s.save(ctx, admin); err != nil {
		return err
	}

	slog.Info("admin account seeded", "email", email)
	return nil
}

// Find returns the stored admin account, or nil if none was seeded yet.
func (s *Store) Find(ctx context.Context) (*Admin, error) {
	raw, ok, err := s.slots.Get(ctx, adminSlot)
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var admin Admin
	if err := json.Unmarshal([]byte(raw), &admin); err != nil {
		return nil, fmt.Errorf("decode admin: %w", err)
	}
	return &admin, nil
}

// CheckPassword verifies a login attempt against the stored hash.
func (s *Store) CheckPassword(admin *Admin, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) == nil
}

// SetTOTPSecret stores a freshly generated TOTP secret. The secret is
// not active until EnableTOTP confirms the first valid code.
func (s *Store) SetTOTPSecret(ctx context.Context, secret string) error {
	admin, err := s.Find(ctx)
	if err != nil {
		return err
	}
	if admin == nil {
		return fmt.Errorf("set totp secret: no admin account")
	}

	admin.TOTPSecret = secret
	admin.TOTPEnabled = false
	return s.save(ctx, admin)
}

// EnableTOTP marks the stored secret as confirmed.
func (s *Store) EnableTOTP(ctx context.Context) error {
	admin, err := s.Find(ctx)
	if err != nil {
		return err
	}
	if admin == nil {
		return fmt.Errorf("enable totp: no admin account")
	}

	admin.TOTPEnabled = true
	return s.save(ctx, admin)
}

func (s *Store) save(ctx context.Context, admin *Admin) error {
	payload, err := json.Marshal(admin)
	if err != nil {
		return fmt.Errorf("encode admin: %w", err)
	}
	if err := s.slots.Set(ctx, adminSlot, string(payload)); err != nil {
		return fmt.Errorf("save admin: %w", err)
	}
	return nil
}
