// Package auth proxies signup and login to whatever backs user accounts: a
// remote auth provider in production, or a local bcrypt+JWT implementation
// when none is configured.
package auth

import (
	"context"
	"encoding/json"
)

// Provider executes signup and login. Results carry the provider's verbatim
// response body and status so handlers can pass them straight through.
type Provider interface {
	SignUp(ctx context.Context, email, password string) (*ProviderResult, error)
	SignIn(ctx context.Context, email, password string) (*ProviderResult, error)
}

type ProviderResult struct {
	Status int
	Body   json.RawMessage
}

func resultJSON(status int, v any) (*ProviderResult, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &ProviderResult{Status: status, Body: body}, nil
}
