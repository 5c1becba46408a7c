// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package router

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"

	"inkwell/internal/auth"
	"inkwell/internal/blog"
	"inkwell/internal/handlers"
	"inkwell/internal/kv"
	"inkwell/internal/middleware"
	"inkwell/internal/session"
)

const (
	testEmail    = "admin@example.com"
	testPassword = "test-password"
)

type testServer struct {
	srv    *httptest.Server
	client *http.Client
}

// newTestServer wires the full stack over an in-memory store and seeds
// the admin account.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	slots := kv.NewMemory()
	blogStore := blog.New(slots)
	blogStore.Load(context.Background())

	accounts := auth.NewStore(slots)
	if err := accounts.Seed(context.Background(), testEmail, testPassword); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	sessions := session.NewStore(slots, false)
	r, limiter := New(
		sessions,
		handlers.NewAdmin(blogStore),
		handlers.NewAuth(sessions, accounts),
		handlers.NewPublic(blogStore),
	)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}

	return &testServer{
		srv:    srv,
		client: &http.Client{Jar: jar},
	}
}

func (ts *testServer) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := ts.client.Get(ts.srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

// post sends a JSON body with the current CSRF token attached.
func (ts *testServer) post(t *testing.T, path, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, ts.srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := ts.csrfToken(t); token != "" {
		req.Header.Set(middleware.CSRFHeaderName, token)
	}

	resp, err := ts.client.Do(req)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func (ts *testServer) csrfToken(t *testing.T) string {
	t.Helper()
	u, err := url.Parse(ts.srv.URL)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	for _, c := range ts.client.Jar.Cookies(u) {
		if c.Name == middleware.CSRFCookieName {
			return c.Value
		}
	}
	return ""
}

func decodeResp(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("decode body: %v (body: %s)", err, raw)
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.get(t, "/health")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestPublicAPI_NoAuthRequired(t *testing.T) {
	ts := newTestServer(t)

	paths := []string{"/api/articles", "/api/categories", "/api/tags", "/api/articles/101"}
	for _, path := range paths {
		resp := ts.get(t, path)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s: status = %d, want 200", path, resp.StatusCode)
		}
	}
}

func TestAdminAPI_RequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.get(t, "/admin/api/dashboard")
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

// TestLoginFlow walks the full authentication path: password login, TOTP
// enrolment, code verification, and finally an authenticated admin call.
func TestLoginFlow(t *testing.T) {
	ts := newTestServer(t)

	// Prime the CSRF cookie.
	resp := ts.get(t, "/admin/api/session")
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("session before login: status = %d, want 401", resp.StatusCode)
	}

	// Wrong password first.
	resp = ts.post(t, "/admin/api/login", `{"email":"admin@example.com","password":"wrong"}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad login: status = %d, want 401", resp.StatusCode)
	}

	// Real login.
	resp = ts.post(t, "/admin/api/login", `{"email":"admin@example.com","password":"test-password"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: status = %d", resp.StatusCode)
	}
	var login struct {
		NeedsSetup bool `json:"needs2faSetup"`
	}
	decodeResp(t, resp, &login)
	if !login.NeedsSetup {
		t.Fatal("fresh account should need 2FA setup")
	}

	// The console stays locked until the second factor completes.
	resp = ts.get(t, "/admin/api/dashboard")
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("dashboard before 2fa: status = %d, want 403", resp.StatusCode)
	}

	// Enrol a TOTP device.
	resp = ts.post(t, "/admin/api/2fa/setup", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("2fa setup: status = %d", resp.StatusCode)
	}
	var setup struct {
		Secret string `json:"secret"`
		QRCode string `json:"qrCode"`
	}
	decodeResp(t, resp, &setup)
	if setup.Secret == "" || setup.QRCode == "" {
		t.Fatal("setup response missing secret or QR code")
	}

	// Verify with a freshly generated code.
	code, err := totp.GenerateCode(setup.Secret, time.Now())
	if err != nil {
		t.Fatalf("generate totp code: %v", err)
	}
	resp = ts.post(t, "/admin/api/2fa/verify", `{"code":"`+code+`"}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("2fa verify: status = %d", resp.StatusCode)
	}

	// The admin API now answers.
	resp = ts.get(t, "/admin/api/dashboard")
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("dashboard after 2fa: status = %d, want 200", resp.StatusCode)
	}

	// Logout locks it again.
	resp = ts.post(t, "/admin/api/logout", "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("logout: status = %d, want 204", resp.StatusCode)
	}
	resp = ts.get(t, "/admin/api/dashboard")
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("dashboard after logout: status = %d, want 401", resp.StatusCode)
	}
}

func TestAdminAPI_CSRFRequired(t *testing.T) {
	ts := newTestServer(t)

	// POST without the CSRF header is refused outright.
	req, err := http.NewRequest(http.MethodPost, ts.srv.URL+"/admin/api/login",
		strings.NewReader(`{"email":"a","password":"b"}`))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := ts.client.Do(req)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
}

func TestLoginRateLimit(t *testing.T) {
	ts := newTestServer(t)

	// Prime the CSRF cookie.
	resp := ts.get(t, "/admin/api/session")
	resp.Body.Close()

	var last int
	for i := 0; i < loginRateLimit+2; i++ {
		resp := ts.post(t, "/admin/api/login", `{"email":"admin@example.com","password":"wrong"}`)
		resp.Body.Close()
		last = resp.StatusCode
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("status after %d attempts = %d, want 429", loginRateLimit+2, last)
	}
}
