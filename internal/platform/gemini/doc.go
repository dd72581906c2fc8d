// Package gemini implements generation.ModelClient against Vertex AI.
//
// Two adapters share one contract:
//
//   - RESTClient issues a single generateContent POST per call, attaching
//     a bearer token fetched from a CredentialSource for that call.
//   - SDKClient drives the same endpoint through google.golang.org/genai.
//
// Both use the sampling parameters from config.LLMConfig, never retry,
// and report failures with the generation package's sentinel errors.
// New selects between them from configuration.
package gemini
