package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// RemoteProvider forwards credentials to a GoTrue-style auth API and returns
// the provider's response verbatim. No credential handling happens locally.
type RemoteProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewRemoteProvider(baseURL, apiKey string) *RemoteProvider {
	return &RemoteProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *RemoteProvider) SignUp(ctx context.Context, email, password string) (*ProviderResult, error) {
	return p.post(ctx, "/signup", email, password)
}

func (p *RemoteProvider) SignIn(ctx context.Context, email, password string) (*ProviderResult, error) {
	return p.post(ctx, "/token?grant_type=password", email, password)
}

func (p *RemoteProvider) post(ctx context.Context, path, email, password string) (*ProviderResult, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", p.apiKey)
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &ProviderResult{Status: resp.StatusCode, Body: body}, nil
}
