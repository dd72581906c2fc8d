// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. The resulting
// Config is immutable and is passed explicitly to every component that
// needs it; nothing reads process environment after startup.
package config
