// Package postgres implements the CredentialStore collaborator on
// PostgreSQL via the pgx database/sql driver, with goose-managed embedded
// schema migrations.
package postgres
