package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rigparts/storefront/internal/domain"
)

type fakeSessions struct {
	sessions map[string]*Session
	err      error
}

func (f *fakeSessions) Create(_ context.Context, _ *Session) (string, error) { return "", nil }
func (f *fakeSessions) Delete(_ context.Context, _ string) error             { return nil }

func (f *fakeSessions) Get(_ context.Context, id string) (*Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.sessions[id]
	if !ok {
		return nil, ErrNoSession
	}
	return s, nil
}

type fakeAccounts struct {
	accounts map[string]*domain.Account
	err      error
}

func (f *fakeAccounts) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.accounts[email]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return a, nil
}

const cookieName = "rigparts_session"

func newTestGate(sessions *fakeSessions, accounts *fakeAccounts) *Gate {
	return NewGate(sessions, accounts, cookieName, "https://rigparts.com")
}

func requestWithSession(id string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	if id != "" {
		r.AddCookie(&http.Cookie{Name: cookieName, Value: id})
	}
	return r
}

func TestCheckNoSession(t *testing.T) {
	gate := newTestGate(&fakeSessions{sessions: map[string]*Session{}}, &fakeAccounts{})
	decision, _ := gate.Check(requestWithSession(""))
	if decision != DeniedLogin {
		t.Fatalf("decision = %v, want DeniedLogin", decision)
	}
}

func TestCheckUnknownSessionID(t *testing.T) {
	gate := newTestGate(&fakeSessions{sessions: map[string]*Session{}}, &fakeAccounts{})
	decision, _ := gate.Check(requestWithSession("stale"))
	if decision != DeniedLogin {
		t.Fatalf("decision = %v, want DeniedLogin", decision)
	}
}

func TestCheckNonAdmin(t *testing.T) {
	gate := newTestGate(
		&fakeSessions{sessions: map[string]*Session{"s1": {Email: "user@x.com"}}},
		&fakeAccounts{accounts: map[string]*domain.Account{
			"user@x.com": {Email: "user@x.com", IsAdmin: false},
		}},
	)
	decision, _ := gate.Check(requestWithSession("s1"))
	if decision != DeniedHome {
		t.Fatalf("decision = %v, want DeniedHome", decision)
	}
}

func TestCheckNoAccount(t *testing.T) {
	gate := newTestGate(
		&fakeSessions{sessions: map[string]*Session{"s1": {Email: "ghost@x.com"}}},
		&fakeAccounts{accounts: map[string]*domain.Account{}},
	)
	decision, _ := gate.Check(requestWithSession("s1"))
	if decision != DeniedHome {
		t.Fatalf("decision = %v, want DeniedHome", decision)
	}
}

func TestCheckAdmin(t *testing.T) {
	gate := newTestGate(
		&fakeSessions{sessions: map[string]*Session{"s1": {Email: "ops@x.com"}}},
		&fakeAccounts{accounts: map[string]*domain.Account{
			"ops@x.com": {Email: "ops@x.com", IsAdmin: true},
		}},
	)
	decision, sess := gate.Check(requestWithSession("s1"))
	if decision != Authorized {
		t.Fatalf("decision = %v, want Authorized", decision)
	}
	if sess == nil || sess.Email != "ops@x.com" {
		t.Fatalf("session = %+v", sess)
	}
}

func TestCheckFailClosed(t *testing.T) {
	// Session store down → denied at the login step.
	gate := newTestGate(&fakeSessions{err: errors.New("redis down")}, &fakeAccounts{})
	if decision, _ := gate.Check(requestWithSession("s1")); decision != DeniedLogin {
		t.Fatalf("session store failure: decision = %v, want DeniedLogin", decision)
	}

	// Account store down → denied at the admin step.
	gate = newTestGate(
		&fakeSessions{sessions: map[string]*Session{"s1": {Email: "ops@x.com"}}},
		&fakeAccounts{err: errors.New("db down")},
	)
	if decision, _ := gate.Check(requestWithSession("s1")); decision != DeniedHome {
		t.Fatalf("account store failure: decision = %v, want DeniedHome", decision)
	}
}

func TestRequireAdminAPIResponses(t *testing.T) {
	gate := newTestGate(
		&fakeSessions{sessions: map[string]*Session{"s1": {Email: "user@x.com"}}},
		&fakeAccounts{accounts: map[string]*domain.Account{
			"user@x.com": {Email: "user@x.com", IsAdmin: false},
		}},
	)
	handler := gate.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// No session → 401 for API paths.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithSession(""))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no session: status = %d, want 401", rec.Code)
	}

	// Non-admin session → 403.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithSession("s1"))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin: status = %d, want 403", rec.Code)
	}
}

func TestRequireAdminBrowserRedirects(t *testing.T) {
	gate := newTestGate(&fakeSessions{sessions: map[string]*Session{}}, &fakeAccounts{})
	handler := gate.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "https://rigparts.com/login" {
		t.Fatalf("Location = %q, want login view", loc)
	}
}
