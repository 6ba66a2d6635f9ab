package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command with the given arguments and piped stdin,
// returning captured stdout.
func runCLI(t *testing.T, args []string, stdin string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// writeTestConfig writes a config file pointing at test servers and returns
// its path.
func writeTestConfig(t *testing.T, apiURL, authURL string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[igdb]",
		`client_id = "cid"`,
		`client_secret = "secret"`,
		`api_url = "` + apiURL + `"`,
		`auth_url = "` + authURL + `"`,
		"",
		"[paths]",
		`token_cache = "` + filepath.Join(dir, "igdb_token.json") + `"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}
	return path
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}
