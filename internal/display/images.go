package display

import "strings"

// ImageTokens is the size-token vocabulary for upstream image URLs. The
// catalog embeds the rendered size inside each URL (for example t_thumb);
// rewriting the source token yields the larger variant of the same image.
// The vocabulary is upstream-specific, so it is carried as data rather than
// logic and can be overridden from configuration.
type ImageTokens struct {
	Source string
	Cover  string
	Logo   string
}

// DefaultImageTokens returns the token vocabulary the catalog currently uses.
func DefaultImageTokens() ImageTokens {
	return ImageTokens{Source: "thumb", Cover: "cover_big", Logo: "logo_med"}
}

// UpgradeImageURL swaps the first occurrence of the source size token for
// target and makes protocol-relative URLs absolute over https.
func UpgradeImageURL(raw, source, target string) string {
	upgraded := strings.Replace(raw, source, target, 1)
	if strings.HasPrefix(upgraded, "//") {
		return "https:" + upgraded
	}
	return upgraded
}
