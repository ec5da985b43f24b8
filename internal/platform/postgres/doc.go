// Package postgres provides the PostgreSQL-backed storage layer: the pgx
// connection pool, the task store, and embedded schema migrations.
package postgres
