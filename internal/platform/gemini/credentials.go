package gemini

import (
	"context"
	"fmt"
	"sync"

	"cloud.google.com/go/auth"
	"cloud.google.com/go/auth/credentials"

	"github.com/Jatin020403/quiz-api/internal/generation"
)

// CloudPlatformScope is the only OAuth scope requested for model calls.
const CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// CredentialSource yields a bearer token for one outbound request.
type CredentialSource interface {
	Token(ctx context.Context) (string, error)
}

// ADCSource resolves Application Default Credentials on first use and asks
// them for a token on every call. A failed discovery is retried on the next
// call rather than cached.
type ADCSource struct {
	mu    sync.Mutex
	creds *auth.Credentials
	// detect is swapped in tests.
	detect func(*credentials.DetectOptions) (*auth.Credentials, error)
}

// NewADCSource returns a credential source backed by ADC.
func NewADCSource() *ADCSource {
	return &ADCSource{detect: credentials.DetectDefault}
}

// Token implements CredentialSource.
func (s *ADCSource) Token(ctx context.Context) (string, error) {
	creds, err := s.credentials()
	if err != nil {
		return "", err
	}

	tok, err := creds.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrCredential, err)
	}
	if tok == nil || tok.Value == "" {
		return "", fmt.Errorf("%w: empty access token", generation.ErrCredential)
	}
	return tok.Value, nil
}

// Credentials exposes the detected credentials for SDK clients.
func (s *ADCSource) Credentials() (*auth.Credentials, error) {
	return s.credentials()
}

func (s *ADCSource) credentials() (*auth.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.creds != nil {
		return s.creds, nil
	}
	creds, err := s.detect(&credentials.DetectOptions{
		Scopes: []string{CloudPlatformScope},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: detect default credentials: %v", generation.ErrCredential, err)
	}
	s.creds = creds
	return creds, nil
}

// StaticToken is a CredentialSource returning a fixed token. It is meant
// for local development against an emulator and for tests.
type StaticToken string

// Token implements CredentialSource.
func (t StaticToken) Token(context.Context) (string, error) {
	if t == "" {
		return "", fmt.Errorf("%w: static token is empty", generation.ErrCredential)
	}
	return string(t), nil
}
