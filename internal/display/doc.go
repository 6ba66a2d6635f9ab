// Package display converts raw catalog records into the stable, fully
// defaulted fields downstream note templates consume.
//
// Normalization is a pure function of one record: no network, no state. All
// absent scalar values share the same "N/A" sentinel; absent image URLs and
// empty genre lists render as a single space so templates emit a blank field
// rather than a missing one. Image URLs are upgraded from the small upstream
// default to larger display variants via an explicit size-token rewrite.
package display
