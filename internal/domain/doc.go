// Package domain holds the core types shared across the storefront:
// tracking events, accounts, catalog parts and notification payloads.
// It has no dependencies on storage or transport packages.
package domain
