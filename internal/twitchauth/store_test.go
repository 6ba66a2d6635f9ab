package twitchauth_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gamedex/internal/twitchauth"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "igdb_token.json")
	store := twitchauth.NewFileStore(path)

	if err := store.Save(twitchauth.Token{AccessToken: "abc123"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	token, found, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !found {
		t.Fatal("expected token to be found")
	}
	if token.AccessToken != "abc123" {
		t.Fatalf("unexpected token after round trip: %q", token.AccessToken)
	}
}

func TestFileStoreLoadMissingFileIsAbsentNotError(t *testing.T) {
	store := twitchauth.NewFileStore(filepath.Join(t.TempDir(), "missing.json"))

	token, found, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error for missing file: %v", err)
	}
	if found {
		t.Fatalf("expected absent token, got %q", token.AccessToken)
	}
}

func TestFileStoreLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "igdb_token.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if _, _, err := twitchauth.NewFileStore(path).Load(); err == nil {
		t.Fatal("expected error for malformed token cache")
	}
}

func TestFileStoreSaveOverwritesPriorToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "igdb_token.json")
	store := twitchauth.NewFileStore(path)

	if err := store.Save(twitchauth.Token{AccessToken: "first"}); err != nil {
		t.Fatalf("first Save returned error: %v", err)
	}
	if err := store.Save(twitchauth.Token{AccessToken: "second"}); err != nil {
		t.Fatalf("second Save returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read token cache: %v", err)
	}
	if strings.Contains(string(data), "first") {
		t.Fatalf("expected prior token to be overwritten: %s", data)
	}

	token, found, err := store.Load()
	if err != nil || !found {
		t.Fatalf("Load after overwrite: token=%v found=%v err=%v", token, found, err)
	}
	if token.AccessToken != "second" {
		t.Fatalf("unexpected token: %q", token.AccessToken)
	}
}

func TestFileStoreLoadTreatsEmptyTokenAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "igdb_token.json")
	if err := os.WriteFile(path, []byte(`{"igdb_token": ""}`), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, found, err := twitchauth.NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if found {
		t.Fatal("expected empty token to be reported absent")
	}
}
