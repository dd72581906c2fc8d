// Package generation defines the boundary between the application and the
// generative model: the prompts sent to it, the response shapes it returns,
// the ModelClient interface implemented by platform adapters, and the
// extraction of the single text payload the rest of the pipeline consumes.
//
// Every failure crossing this boundary is one of the sentinel errors in
// errors.go, so callers branch with errors.Is rather than on message text.
package generation
