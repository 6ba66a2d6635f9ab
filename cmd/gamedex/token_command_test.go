package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestTokenRefreshWritesCache(t *testing.T) {
	var authCalls atomic.Int32
	authServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"minted"}`))
	}))
	t.Cleanup(authServer.Close)

	configPath := writeTestConfig(t, "https://api.example.test/v4/games", authServer.URL)

	out, err := runCLI(t, []string{"token", "refresh", "-c", configPath}, "")
	if err != nil {
		t.Fatalf("token refresh returned error: %v", err)
	}
	requireContains(t, out, "Refreshed credential cache")
	if got := authCalls.Load(); got != 1 {
		t.Fatalf("expected 1 auth request, got %d", got)
	}
}

func TestTokenShowReportsStateWithoutValue(t *testing.T) {
	authServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"secret-value"}`))
	}))
	t.Cleanup(authServer.Close)

	configPath := writeTestConfig(t, "https://api.example.test/v4/games", authServer.URL)

	out, err := runCLI(t, []string{"token", "show", "-c", configPath}, "")
	if err != nil {
		t.Fatalf("token show returned error: %v", err)
	}
	requireContains(t, out, "State: no cached credential")

	if _, err := runCLI(t, []string{"token", "refresh", "-c", configPath}, ""); err != nil {
		t.Fatalf("token refresh returned error: %v", err)
	}

	out, err = runCLI(t, []string{"token", "show", "-c", configPath}, "")
	if err != nil {
		t.Fatalf("token show returned error: %v", err)
	}
	requireContains(t, out, "State: credential present")
	if strings.Contains(out, "secret-value") {
		t.Fatal("token show leaked the credential value")
	}
}
