package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRemoteProvider_SignUpForwardsCredentials(t *testing.T) {
	var gotPath, gotAPIKey string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("apikey")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"remote-user"}`))
	}))
	defer srv.Close()

	p := NewRemoteProvider(srv.URL, "service-key")
	res, err := p.SignUp(context.Background(), "student@example.com", "hunter22")
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	if gotPath != "/signup" {
		t.Errorf("path = %q, want /signup", gotPath)
	}
	if gotAPIKey != "service-key" {
		t.Errorf("apikey header = %q", gotAPIKey)
	}
	if gotBody["email"] != "student@example.com" || gotBody["password"] != "hunter22" {
		t.Errorf("forwarded body = %v", gotBody)
	}
	if res.Status != http.StatusOK || string(res.Body) != `{"id":"remote-user"}` {
		t.Errorf("result = %d %s", res.Status, res.Body)
	}
}

func TestRemoteProvider_SignInUsesPasswordGrant(t *testing.T) {
	var gotURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer srv.Close()

	p := NewRemoteProvider(srv.URL+"/", "service-key")
	res, err := p.SignIn(context.Background(), "student@example.com", "wrong")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	if gotURL != "/token?grant_type=password" {
		t.Errorf("url = %q, want /token?grant_type=password", gotURL)
	}
	// Provider statuses pass through untouched, including failures.
	if res.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", res.Status)
	}
}
