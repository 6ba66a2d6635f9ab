package display

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gamedex/internal/igdb"
	"gamedex/internal/textutil"
)

const (
	// Fallback is the shared sentinel for absent scalar values.
	Fallback = "N/A"
	// Blank is emitted for absent image URLs and empty genre lists.
	Blank = " "
	// plotPlaceholder is used when neither storyline nor summary is present.
	plotPlaceholder = "Plot not available."
	// plotLimit caps plot text length before the ellipsis.
	plotLimit = 300
)

// quoteNewlineRun matches runs of double quotes and line breaks that must
// collapse to a single space before the plot text is quoted.
var quoteNewlineRun = regexp.MustCompile(`["\r\n]+`)

// Record is the normalized output derived from one catalog record. It is
// never mutated after creation.
type Record struct {
	FileName      string `json:"file_name"`
	Genres        string `json:"genres"`
	DeveloperName string `json:"developer_name"`
	DeveloperLogo string `json:"developer_logo"`
	Thumbnail     string `json:"thumbnail"`
	ReleaseYear   string `json:"release_year"`
	Plot          string `json:"plot"`
	Rating        string `json:"rating"`
	Platforms     string `json:"platforms"`
	URL           string `json:"url"`
}

// Normalize maps one raw catalog record to its display fields. It is a pure
// function: equal inputs always produce equal records.
func Normalize(game igdb.Game, tokens ImageTokens) Record {
	return Record{
		FileName:      textutil.SanitizeFileName(game.Name),
		Genres:        textutil.FormatList(names(game.Genres)),
		DeveloperName: developerName(game),
		DeveloperLogo: developerLogo(game, tokens),
		Thumbnail:     thumbnail(game, tokens),
		ReleaseYear:   releaseYear(game),
		Plot:          plotText(game),
		Rating:        rating(game),
		Platforms:     Platforms(game),
		URL:           game.URL,
	}
}

// SuggestionTitle renders "Name (Year)" for candidate pickers.
func SuggestionTitle(game igdb.Game) string {
	year := "Unknown"
	if game.FirstReleaseDate != 0 {
		year = strconv.Itoa(time.Unix(game.FirstReleaseDate, 0).UTC().Year())
	}
	return fmt.Sprintf("%s (%s)", game.Name, year)
}

func names(entries []igdb.Named) []string {
	if len(entries) == 0 {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Name)
	}
	return out
}

func developerName(game igdb.Game) string {
	dev := game.Developer()
	if dev == nil || strings.TrimSpace(dev.Name) == "" {
		return Fallback
	}
	return dev.Name
}

func developerLogo(game igdb.Game, tokens ImageTokens) string {
	dev := game.Developer()
	if dev == nil || dev.Logo == nil || dev.Logo.URL == "" {
		return Blank
	}
	return UpgradeImageURL(dev.Logo.URL, tokens.Source, tokens.Logo)
}

func thumbnail(game igdb.Game, tokens ImageTokens) string {
	if game.Cover == nil || game.Cover.URL == "" {
		return Blank
	}
	return UpgradeImageURL(game.Cover.URL, tokens.Source, tokens.Cover)
}

// releaseYear derives the calendar year from the epoch-seconds release
// timestamp. UTC is pinned so the result does not depend on host time zone.
func releaseYear(game igdb.Game) string {
	if game.FirstReleaseDate == 0 {
		return Fallback
	}
	return strconv.Itoa(time.Unix(game.FirstReleaseDate, 0).UTC().Year())
}

// plotText prefers storyline over summary, collapses embedded quotes and
// line breaks to spaces, truncates to plotLimit characters, and wraps the
// result in quotes with interior quotes escaped.
func plotText(game igdb.Game) string {
	source := strings.TrimSpace(game.Storyline)
	if source == "" {
		source = strings.TrimSpace(game.Summary)
	}
	if source == "" {
		return plotPlaceholder
	}
	collapsed := quoteNewlineRun.ReplaceAllString(source, " ")
	truncated := textutil.Truncate(collapsed, plotLimit)
	escaped := strings.ReplaceAll(truncated, `"`, `\"`)
	return `"` + escaped + `"`
}

func rating(game igdb.Game) string {
	if game.Rating == nil {
		return Fallback
	}
	return strconv.Itoa(int(math.Round(*game.Rating)))
}

// Platforms renders the platform list for a record or a suggestion row,
// comma-joined with the N/A fallback when the catalog lists none.
func Platforms(game igdb.Game) string {
	entries := names(game.Platforms)
	if len(entries) == 0 {
		return Fallback
	}
	for i, entry := range entries {
		entries[i] = strings.TrimSpace(entry)
	}
	return strings.Join(entries, ", ")
}
