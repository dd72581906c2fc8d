// Package mocks provides shared test doubles for the interfaces in
// internal/generation, internal/store and internal/service/auth.
//
// Two styles are used. Function-field mocks (MockModelClient,
// MockJWTService) fall back to fixed values when no function is set:
//
//	client := &mocks.MockModelClient{
//	    InvokeFn: func(ctx context.Context, prompt string) (*generation.Response, error) {
//	        return mocks.TextResponse("{}"), nil
//	    },
//	}
//
// Expectation mocks (OwnerStore, PasswordHasher) embed testify's mock.Mock.
// InMemoryOwnerStore is a working store for end-to-end handler tests.
package mocks
