package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gamedex/internal/lookup"
)

func newLookupServers(t *testing.T, records string) (apiURL, authURL string) {
	t.Helper()

	authServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok"}`))
	}))
	t.Cleanup(authServer.Close)

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(records))
	}))
	t.Cleanup(apiServer.Close)

	return apiServer.URL, authServer.URL
}

func TestLookupFirstEmitsJSONRecord(t *testing.T) {
	apiURL, authURL := newLookupServers(t, `[
		{"id":1,"name":"Half-Life 2","slug":"half-life-2","first_release_date":1100563200,
		 "genres":[{"name":"Shooter"}],"platforms":[{"name":"PC"}],"rating":95.4,
		 "cover":{"url":"//images.igdb.com/t_thumb/co1.jpg"},
		 "storyline":"Gordon returns.","url":"https://www.igdb.com/games/half-life-2"}
	]`)
	configPath := writeTestConfig(t, apiURL, authURL)

	out, err := runCLI(t, []string{"lookup", "--first", "--json", "-c", configPath, "half-life 2"}, "")
	if err != nil {
		t.Fatalf("lookup returned error: %v", err)
	}

	var record map[string]string
	if err := json.Unmarshal([]byte(out), &record); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if record["file_name"] != "Half-Life 2" {
		t.Fatalf("unexpected file name: %q", record["file_name"])
	}
	if record["release_year"] != "2004" {
		t.Fatalf("unexpected release year: %q", record["release_year"])
	}
	if record["thumbnail"] != "https://images.igdb.com/t_cover_big/co1.jpg" {
		t.Fatalf("unexpected thumbnail: %q", record["thumbnail"])
	}
}

func TestLookupPromptsForSelectionAmongCandidates(t *testing.T) {
	apiURL, authURL := newLookupServers(t, `[
		{"id":1,"name":"Portal","slug":"portal","first_release_date":1191974400},
		{"id":2,"name":"Portal 2","slug":"portal-2","first_release_date":1303171200}
	]`)
	configPath := writeTestConfig(t, apiURL, authURL)

	out, err := runCLI(t, []string{"lookup", "-c", configPath, "portal"}, "2\n")
	if err != nil {
		t.Fatalf("lookup returned error: %v", err)
	}
	requireContains(t, out, "Portal (2007)")
	requireContains(t, out, "Portal 2 (2011)")
	requireContains(t, out, "Portal 2")
}

func TestLookupSelectsCandidateWithQueryAndChoiceOnStdin(t *testing.T) {
	apiURL, authURL := newLookupServers(t, `[
		{"id":1,"name":"Portal","slug":"portal","first_release_date":1191974400,
		 "summary":"Enrichment center escape."},
		{"id":2,"name":"Portal 2","slug":"portal-2","first_release_date":1303171200,
		 "summary":"Cooperative testing initiative."}
	]`)
	configPath := writeTestConfig(t, apiURL, authURL)

	out, err := runCLI(t, []string{"lookup", "-c", configPath}, "portal\n2\n")
	if err != nil {
		t.Fatalf("lookup returned error: %v", err)
	}
	requireContains(t, out, "Cooperative testing initiative.")
	if strings.Contains(out, "Enrichment center escape.") {
		t.Fatal("first candidate was selected instead of the second")
	}
}

func TestLookupAbortsWithoutSelection(t *testing.T) {
	apiURL, authURL := newLookupServers(t, `[
		{"id":1,"name":"Portal","slug":"portal"},
		{"id":2,"name":"Portal 2","slug":"portal-2"}
	]`)
	configPath := writeTestConfig(t, apiURL, authURL)

	_, err := runCLI(t, []string{"lookup", "-c", configPath, "portal"}, "\n")
	if !errors.Is(err, lookup.ErrInputAborted) {
		t.Fatalf("expected ErrInputAborted, got %v", err)
	}
}

func TestLookupAbortsWithoutInput(t *testing.T) {
	apiURL, authURL := newLookupServers(t, `[]`)
	configPath := writeTestConfig(t, apiURL, authURL)

	_, err := runCLI(t, []string{"lookup", "-c", configPath}, "\n")
	if !errors.Is(err, lookup.ErrInputAborted) {
		t.Fatalf("expected ErrInputAborted, got %v", err)
	}
}

func TestLookupReadsQueryFromStdin(t *testing.T) {
	apiURL, authURL := newLookupServers(t, `[
		{"id":1,"name":"The Witness","slug":"the-witness","first_release_date":1453766400}
	]`)
	configPath := writeTestConfig(t, apiURL, authURL)

	out, err := runCLI(t, []string{"lookup", "-c", configPath}, "the witness\n")
	if err != nil {
		t.Fatalf("lookup returned error: %v", err)
	}
	requireContains(t, out, "The Witness")
	requireContains(t, out, "2016")
}

func TestLookupSurfacesNoResults(t *testing.T) {
	apiURL, authURL := newLookupServers(t, `[]`)
	configPath := writeTestConfig(t, apiURL, authURL)

	_, err := runCLI(t, []string{"lookup", "-c", configPath, "nothing here"}, "")
	if !errors.Is(err, lookup.ErrNoResults) {
		t.Fatalf("expected ErrNoResults, got %v", err)
	}
}
