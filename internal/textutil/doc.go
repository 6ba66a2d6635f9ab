// Package textutil provides text processing utilities for display-record
// formatting and filename sanitization.
//
// The primary use cases are:
//   - Stripping filesystem-unsafe characters from game titles
//   - Formatting name lists (genres, platforms) for template output
//   - Truncating plot text with a trailing ellipsis
package textutil
