// Package postgres implements store.OwnerStore on PostgreSQL.
//
// Owners live in a single table whose flashes and quiz columns are JSONB
// arrays. Artifacts are attached with one UPDATE that concatenates onto
// the array server-side, so concurrent attaches to the same owner are
// serialized by the row lock and none is lost. Queries are built with
// squirrel and read back with scany.
package postgres
