// Package store defines the persistence interfaces the services depend on
// and the errors every implementation reports. The Postgres implementation
// lives in internal/platform/postgres.
package store
