// Package api adapts HTTP requests to the content and owner services. It
// decodes and validates form input, applies the uniform success/fail
// envelope and maps service errors onto status codes.
package api
