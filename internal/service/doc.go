// Package service holds the application use cases. ContentService runs the
// generation pipeline (prompt, model call, text extraction, attachment to
// an owner) and OwnerService handles account creation and login.
//
// Services depend on the interfaces in internal/generation and
// internal/store and never on a concrete model backend or database.
// Failures keep their component sentinel in the chain so the API layer
// can branch with errors.Is.
package service
