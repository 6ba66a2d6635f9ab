package textutil_test

import (
	"strings"
	"testing"

	"gamedex/internal/textutil"
)

func TestSanitizeFileNameRemovesIllegalCharacters(t *testing.T) {
	got := textutil.SanitizeFileName(`Half-Life: "Part 2"`)
	if got != "Half-Life Part 2" {
		t.Fatalf("unexpected sanitized name: %q", got)
	}
}

func TestSanitizeFileNameKeepsSafeCharacters(t *testing.T) {
	if got := textutil.SanitizeFileName("Ori and the Blind Forest"); got != "Ori and the Blind Forest" {
		t.Fatalf("safe title was altered: %q", got)
	}
	if got := textutil.SanitizeFileName(`S.T.A.L.K.E.R.: Shadow of Chernobyl`); got != "STALKER Shadow of Chernobyl" {
		t.Fatalf("unexpected sanitized name: %q", got)
	}
}

func TestFormatList(t *testing.T) {
	cases := []struct {
		name  string
		items []string
		want  string
	}{
		{"empty", nil, " "},
		{"single", []string{" RPG "}, "RPG"},
		{"multiple", []string{"RPG", " Action"}, "RPG, Action"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := textutil.FormatList(tc.items); got != tc.want {
				t.Fatalf("FormatList(%v) = %q, want %q", tc.items, got, tc.want)
			}
		})
	}
}

func TestTruncateShortTextUnchanged(t *testing.T) {
	if got := textutil.Truncate("short", 300); got != "short" {
		t.Fatalf("short text was altered: %q", got)
	}
}

func TestTruncateLongTextAppendsEllipsis(t *testing.T) {
	long := strings.Repeat("a", 400)
	got := textutil.Truncate(long, 300)
	if len(got) != 303 {
		t.Fatalf("expected 300 characters plus ellipsis, got %d", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected trailing ellipsis: %q", got)
	}
}

func TestTruncateTrimsTrailingWhitespaceBeforeEllipsis(t *testing.T) {
	long := strings.Repeat("a", 299) + " " + strings.Repeat("b", 100)
	got := textutil.Truncate(long, 300)
	if got != strings.Repeat("a", 299)+"..." {
		t.Fatalf("expected trimmed truncation, got %q", got)
	}
}
