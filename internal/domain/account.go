package domain

import "time"

// Account is a storefront user record. IsAdmin gates access to the
// administrative API; it is looked up fresh on every admin request.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}
