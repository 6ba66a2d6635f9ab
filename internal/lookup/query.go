package lookup

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugPattern    = regexp.MustCompile(`(?i)/games/([^/?#]+)`)
	nonSlugPattern = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// diacriticFolder decomposes characters and strips combining marks so
// accented input slugs match the ASCII slugs the catalog assigns.
var diacriticFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Query captures one invocation's resolved input. Derived once per
// invocation; never mutated afterwards.
type Query struct {
	Raw      string
	Slug     string
	FreeText string
}

// ResolveQuery derives the slug candidate and free-text query from raw user
// input. A catalog URL already encodes the canonical identifier, so its slug
// segment is used verbatim; typed names are slugified. The raw input is
// always retained as the free-text fallback.
func ResolveQuery(raw string) Query {
	slug := ExtractSlug(raw)
	if slug == "" {
		slug = Slugify(raw)
	}
	return Query{Raw: raw, Slug: slug, FreeText: raw}
}

// ExtractSlug pulls the slug segment from a canonical catalog URL of the
// form .../games/<slug>, matched case-insensitively. It returns "" when the
// input carries no such segment.
func ExtractSlug(input string) string {
	match := slugPattern.FindStringSubmatch(input)
	if match == nil {
		return ""
	}
	return match[1]
}

// Slugify derives a slug candidate from typed text: diacritics folded,
// lowercased, trimmed, everything but word characters, whitespace, and
// hyphens removed, then whitespace runs collapsed to single hyphens.
func Slugify(text string) string {
	text = foldDiacritics(text)
	text = strings.TrimSpace(strings.ToLower(text))
	text = nonSlugPattern.ReplaceAllString(text, "")
	return whitespaceRun.ReplaceAllString(text, "-")
}

func foldDiacritics(text string) string {
	folded, _, err := transform.String(diacriticFolder, text)
	if err != nil {
		return text
	}
	return folded
}
