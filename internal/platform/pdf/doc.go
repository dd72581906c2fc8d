// Package pdf pulls plain text out of uploaded PDF documents so it can be
// used as generation source text.
package pdf
