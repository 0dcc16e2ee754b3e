// Package store provides PostgreSQL access through a bounded pgx pool.
//
// Connect builds the pool against PgBouncer from configuration;
// LocationStore reads the owntracks locations table with whitelisted
// sorting and clamped pagination. The pool is optional at the server
// level: without database credentials the store is never constructed
// and the database endpoints report not-configured.
package store
