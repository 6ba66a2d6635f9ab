package textutil

import "strings"

// FormatList renders a list of names for template output. An empty list
// becomes a single space so templates render a blank field rather than a
// missing one; single entries are trimmed; multiple entries are trimmed and
// comma-joined.
func FormatList(items []string) string {
	switch len(items) {
	case 0:
		return " "
	case 1:
		return strings.TrimSpace(items[0])
	}
	trimmed := make([]string, 0, len(items))
	for _, item := range items {
		trimmed = append(trimmed, strings.TrimSpace(item))
	}
	return strings.Join(trimmed, ", ")
}

// Truncate shortens text to at most max characters, trimming trailing
// whitespace and appending an ellipsis when anything was cut. Counting is
// rune-based so multi-byte text is never split mid-character.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return strings.TrimSpace(string(runes[:max])) + "..."
}
