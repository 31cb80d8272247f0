// Package httputil provides shared HTTP response/request utilities for
// the JSON API handlers.
//
// Handlers should use these helpers instead of writing raw
// http.ResponseWriter calls so that error envelopes and content types stay
// consistent across endpoints. The tracking endpoints are the exception:
// they return plain-text errors and image/redirect bodies by contract and
// write those directly.
package httputil
