package twitchauth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// FileStore persists the cached bearer credential as a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore builds a FileStore rooted at the provided path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path reports the credential file location.
func (s *FileStore) Path() string {
	return s.path
}

type storedToken struct {
	IGDBToken string `json:"igdb_token"`
}

// Load reads the cached credential from disk. A missing file resolves to
// found=false without an error; a present but unreadable file is an error.
func (s *FileStore) Load() (Token, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Token{}, false, nil
		}
		return Token{}, false, fmt.Errorf("read token cache: %w", err)
	}

	var stored storedToken
	if err := json.Unmarshal(data, &stored); err != nil {
		return Token{}, false, fmt.Errorf("decode token cache: %w", err)
	}

	token := Token{AccessToken: stored.IGDBToken}
	if token.IsZero() {
		return Token{}, false, nil
	}
	return token, true, nil
}

// Save overwrites the cached credential. The write is guarded by a file lock
// and lands via temp-file rename, so concurrent invocations never observe a
// partial file; the last writer wins.
func (s *FileStore) Save(token Token) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("ensure token cache directory: %w", err)
	}

	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock token cache: %w", err)
	}
	defer lock.Unlock()

	data, err := json.MarshalIndent(storedToken{IGDBToken: token.AccessToken}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode token cache: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("write token cache: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace token cache: %w", err)
	}
	return nil
}
