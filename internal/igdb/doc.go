// Package igdb provides the minimal IGDB API client used for game lookups.
//
// It issues apicalypse queries against the games endpoint and decodes the
// raw catalog records. The client is stateless transport: every call takes
// the bearer credential explicitly, so credential lifecycle (caching,
// refresh-on-failure) stays with the caller. Responses are strongly typed
// with every upstream field treated as optional, because IGDB omits any
// field a record does not populate.
package igdb
