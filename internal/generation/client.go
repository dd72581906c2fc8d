package generation

import "context"

// ModelClient performs one call to the generative model.
//
// Implementations build a single user turn carrying prompt, send it with
// the deployment's fixed sampling parameters, and return the decoded reply.
// They never retry. Failures are ErrCredential, ErrTransport or
// ErrResponseDecode (possibly wrapping more detail).
type ModelClient interface {
	Invoke(ctx context.Context, prompt string) (*Response, error)
}
