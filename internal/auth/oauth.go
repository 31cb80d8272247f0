package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/rigparts/storefront/internal/config"
	"github.com/rigparts/storefront/internal/pkg/httputil"
	"github.com/rigparts/storefront/internal/pkg/logger"
)

// googleUserInfo is the profile returned by Google's userinfo endpoint.
type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

// Manager handles the Google OAuth login flow and session cookies.
// Being logged in grants nothing by itself; admin access is decided by
// the Gate on every request.
type Manager struct {
	oauth    *oauth2.Config
	sessions SessionStore
	accounts AccountRepository
	cfg      config.AuthConfig
	siteURL  string
}

// NewManager creates an authentication manager. baseURL is this
// service's own public origin (for the OAuth callback); siteURL is the
// storefront origin users land on after login.
func NewManager(cfg config.AuthConfig, sessions SessionStore, accounts AccountRepository, baseURL, siteURL string) *Manager {
	return &Manager{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  baseURL + "/auth/callback",
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		sessions: sessions,
		accounts: accounts,
		cfg:      cfg,
		siteURL:  siteURL,
	}
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// HandleLogin starts the OAuth flow.
func (m *Manager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	state, err := randomToken()
	if err != nil {
		httputil.InternalError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, m.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline), http.StatusTemporaryRedirect)
}

// HandleCallback finishes the OAuth flow: verifies state, exchanges the
// code, fetches the profile and creates a session.
func (m *Manager) HandleCallback(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || r.URL.Query().Get("state") != stateCookie.Value {
		logger.Warn("oauth state mismatch")
		http.Redirect(w, r, m.siteURL+"/login?error=invalid_state", http.StatusTemporaryRedirect)
		return
	}

	http.SetCookie(w, &http.Cookie{Name: "oauth_state", Value: "", Path: "/", MaxAge: -1})

	if errMsg := r.URL.Query().Get("error"); errMsg != "" {
		logger.Warn("oauth provider error", "err", errMsg)
		http.Redirect(w, r, m.siteURL+"/login?error="+errMsg, http.StatusTemporaryRedirect)
		return
	}

	token, err := m.oauth.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		logger.Error("oauth code exchange failed", "err", err)
		http.Redirect(w, r, m.siteURL+"/login?error=exchange_failed", http.StatusTemporaryRedirect)
		return
	}

	info, err := m.fetchUserInfo(r.Context(), token.AccessToken)
	if err != nil {
		logger.Error("oauth userinfo failed", "err", err)
		http.Redirect(w, r, m.siteURL+"/login?error=userinfo_failed", http.StatusTemporaryRedirect)
		return
	}

	sessionID, err := m.sessions.Create(r.Context(), &Session{
		UserID: info.ID,
		Email:  info.Email,
		Name:   info.Name,
	})
	if err != nil {
		logger.Error("session create failed", "err", err)
		http.Redirect(w, r, m.siteURL+"/login?error=session_failed", http.StatusTemporaryRedirect)
		return
	}

	logger.Info("user logged in", "email", info.Email)

	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   m.cfg.CookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, m.siteURL+"/", http.StatusTemporaryRedirect)
}

// HandleLogout deletes the session and clears the cookie.
func (m *Manager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(m.cfg.CookieName); err == nil {
		if err := m.sessions.Delete(r.Context(), cookie.Value); err != nil {
			logger.Warn("session delete failed", "err", err)
		}
	}

	http.SetCookie(w, &http.Cookie{Name: m.cfg.CookieName, Value: "", Path: "/", MaxAge: -1})
	http.Redirect(w, r, m.siteURL+"/", http.StatusTemporaryRedirect)
}

// HandleUserInfo reports the current session and admin flag as JSON. This
// feeds the front-end's render-time check; it is informational only, the
// Gate middleware is the actual boundary.
func (m *Manager) HandleUserInfo(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(m.cfg.CookieName)
	if err != nil {
		httputil.JSON(w, http.StatusUnauthorized, map[string]any{"authenticated": false})
		return
	}
	sess, err := m.sessions.Get(r.Context(), cookie.Value)
	if err != nil {
		if !errors.Is(err, ErrNoSession) {
			logger.Error("session lookup failed", "err", err)
		}
		httputil.JSON(w, http.StatusUnauthorized, map[string]any{"authenticated": false})
		return
	}

	isAdmin := false
	if acct, err := m.accounts.GetByEmail(r.Context(), sess.Email); err == nil {
		isAdmin = acct.IsAdmin
	}

	httputil.OK(w, map[string]any{
		"authenticated": true,
		"user": map[string]any{
			"id":       sess.UserID,
			"email":    sess.Email,
			"name":     sess.Name,
			"is_admin": isAdmin,
		},
	})
}

func (m *Manager) fetchUserInfo(ctx context.Context, accessToken string) (*googleUserInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		"https://www.googleapis.com/oauth2/v2/userinfo?access_token="+accessToken, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get user info: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read user info: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint: %s", string(body))
	}

	var info googleUserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("parse user info: %w", err)
	}
	return &info, nil
}
