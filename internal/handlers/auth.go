// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"inkwell/internal/auth"
	"inkwell/internal/middleware"
	"inkwell/internal/session"
)

const totpIssuer = "Inkwell"

// Auth groups the authentication endpoints: password login, TOTP
// enrolment and verification, and logout.
type Auth struct {
	sessions *session.Store
	accounts *auth.Store
}

func NewAuth(sessions *session.Store, accounts *auth.Store) *Auth {
	return &Auth{sessions: sessions, accounts: accounts}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Email      string `json:"email"`
	NeedsSetup bool   `json:"needs2faSetup"`
	TwoFADone  bool   `json:"twoFaDone"`
}

// Login checks the credentials and opens a session. The session is not
// fully authenticated until the TOTP step completes.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	admin, err := a.accounts.Find(r.Context())
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	// Same answer for a wrong password and a missing account.
	if admin == nil || admin.Email != req.Email || !a.accounts.CheckPassword(admin, req.Password) {
		respondError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if _, err := a.sessions.Create(r.Context(), w, &session.Data{
		Email:     admin.Email,
		TwoFADone: false,
	}); err != nil {
		slog.Error("session create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		Email:      admin.Email,
		NeedsSetup: admin.Needs2FASetup(),
	})
}

type twoFASetupResponse struct {
	Secret string `json:"secret"`
	URL    string `json:"otpauthUrl"`
	QRCode string `json:"qrCode"` // base64 PNG
}

// TwoFASetup generates a fresh TOTP secret for the logged-in admin and
// returns it with a QR code for the authenticator app. The secret stays
// inactive until the first code verifies.
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: sess.Email,
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := a.accounts.SetTOTPSecret(r.Context(), key.Secret()); err != nil {
		slog.Error("save totp secret failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr code generation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, twoFASetupResponse{
		Secret: key.Secret(),
		URL:    key.URL(),
		QRCode: base64.StdEncoding.EncodeToString(qrPNG),
	})
}

type twoFAVerifyRequest struct {
	Code string `json:"code"`
}

// TwoFAVerify validates a TOTP code and unlocks the session. The first
// successful verification confirms enrolment.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req twoFAVerifyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	admin, err := a.accounts.Find(r.Context())
	if err != nil || admin == nil {
		slog.Error("admin lookup for 2fa failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if admin.TOTPSecret == "" {
		respondError(w, http.StatusConflict, "two-factor setup not started")
		return
	}

	if !totp.Validate(req.Code, admin.TOTPSecret) {
		respondError(w, http.StatusUnauthorized, "invalid code")
		return
	}

	if !admin.TOTPEnabled {
		if err := a.accounts.EnableTOTP(r.Context()); err != nil {
			slog.Error("enable totp failed", "error", err)
			respondError(w, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		Email:     sess.Email,
		TwoFADone: true,
	})
}

// Session reports who is logged in. The admin SPA calls this on load to
// decide between the login screen and the console.
func (a *Auth) Session(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	respondJSON(w, http.StatusOK, loginResponse{
		Email:     sess.Email,
		TwoFADone: sess.TwoFADone,
	})
}

// Logout destroys the session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.sessions.Destroy(r.Context(), w, r)
	w.WriteHeader(http.StatusNoContent)
}
