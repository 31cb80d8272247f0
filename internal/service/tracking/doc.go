// Package tracking implements campaign engagement recording.
//
// The service layer validates inputs and applies the open-event dedup
// contract; it depends on the Repository interface defined here and never
// imports from the handler layer. The Postgres implementation lives in
// repository/postgres.
package tracking
