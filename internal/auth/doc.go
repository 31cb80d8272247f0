// Package auth implements login sessions and the admin gate.
//
// Sessions are created by a Google OAuth flow and stored in Redis with a
// TTL; the admin gate re-resolves the session and the account's is_admin
// flag on every protected request. Authorization is enforced here, server
// side, before protected content is transmitted; any client-side check
// is a UX nicety, not a boundary.
package auth
