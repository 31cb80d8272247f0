package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rigparts/storefront/internal/domain"
	"github.com/rigparts/storefront/internal/pkg/httputil"
	"github.com/rigparts/storefront/internal/pkg/logger"
)

// ErrAccountNotFound is returned when no account exists for an email.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository looks up storefront accounts for authorization.
type AccountRepository interface {
	// GetByEmail returns the account for an email address, or
	// ErrAccountNotFound.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

// Decision is the outcome of an admin-gate check.
type Decision int

const (
	// Authorized: live session and the account is an administrator.
	Authorized Decision = iota
	// DeniedLogin: no live session; the caller belongs at the login view.
	DeniedLogin
	// DeniedHome: a session exists but the account is missing or not an
	// administrator; the caller belongs at the home view.
	DeniedHome
)

// Gate verifies, on every request, that a live session exists and that
// its account carries the admin flag. Nothing is cached between requests
// and any store failure denies (fail closed).
type Gate struct {
	sessions   SessionStore
	accounts   AccountRepository
	cookieName string
	siteURL    string
}

// NewGate creates an admin gate. siteURL is the public storefront origin
// used for browser redirects on denial.
func NewGate(sessions SessionStore, accounts AccountRepository, cookieName, siteURL string) *Gate {
	return &Gate{
		sessions:   sessions,
		accounts:   accounts,
		cookieName: cookieName,
		siteURL:    strings.TrimRight(siteURL, "/"),
	}
}

// SessionFromRequest resolves the request's session cookie. Returns
// ErrNoSession for absent/unknown cookies; other errors are store
// failures.
func (g *Gate) SessionFromRequest(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(g.cookieName)
	if err != nil {
		return nil, ErrNoSession
	}
	return g.sessions.Get(r.Context(), cookie.Value)
}

// Check runs the two-step verification for a request: session presence,
// then the account admin flag. The session is returned alongside
// Authorized so handlers can attribute actions.
func (g *Gate) Check(r *http.Request) (Decision, *Session) {
	sess, err := g.SessionFromRequest(r)
	if err != nil {
		if !errors.Is(err, ErrNoSession) {
			logger.Error("session lookup failed, denying", "err", err)
		}
		return DeniedLogin, nil
	}

	acct, err := g.accounts.GetByEmail(r.Context(), sess.Email)
	if err != nil {
		if !errors.Is(err, ErrAccountNotFound) {
			logger.Error("account lookup failed, denying", "err", err, "email", sess.Email)
		}
		return DeniedHome, nil
	}
	if !acct.IsAdmin {
		return DeniedHome, nil
	}
	return Authorized, sess
}

// RequireAdmin is middleware enforcing the admin gate. API clients get
// JSON 401/403; browser requests are redirected to the login or home
// view of the public site.
func (g *Gate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision, _ := g.Check(r)
		switch decision {
		case Authorized:
			next.ServeHTTP(w, r)
		case DeniedLogin:
			if wantsJSON(r) {
				httputil.Error(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			http.Redirect(w, r, g.siteURL+"/login", http.StatusFound)
		default:
			if wantsJSON(r) {
				httputil.Error(w, http.StatusForbidden, "forbidden")
				return
			}
			http.Redirect(w, r, g.siteURL+"/?notice=not_authorized", http.StatusFound)
		}
	})
}

func wantsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
