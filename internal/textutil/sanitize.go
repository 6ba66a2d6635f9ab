package textutil

import "strings"

// fileNameReplacer strips characters that downstream note templates cannot
// tolerate in file names: backslash, comma, hash, percent, ampersand, braces,
// slash, asterisk, angle brackets, dollar, double quote, colon, at sign, and
// period.
var fileNameReplacer = strings.NewReplacer(
	"\\", "",
	",", "",
	"#", "",
	"%", "",
	"&", "",
	"{", "",
	"}", "",
	"/", "",
	"*", "",
	"<", "",
	">", "",
	"$", "",
	"\"", "",
	":", "",
	"@", "",
	".", "",
)

// SanitizeFileName removes filesystem-unsafe characters from a title so the
// result can be used verbatim as a file name. Interior whitespace is kept.
func SanitizeFileName(name string) string {
	return fileNameReplacer.Replace(name)
}
