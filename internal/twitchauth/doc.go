// Package twitchauth mints and caches the bearer credential used for IGDB
// catalog requests.
//
// IGDB authenticates through Twitch: a client-credentials grant against the
// Twitch identity endpoint yields an opaque access token that is presented as
// a bearer credential on every catalog call. The Client performs a single
// grant request with no retries; retry policy belongs to the caller. The
// FileStore persists exactly one credential as a small JSON file, overwriting
// it wholesale on refresh. Token validity is never tracked locally; it is
// discovered only by a failed catalog call.
package twitchauth
