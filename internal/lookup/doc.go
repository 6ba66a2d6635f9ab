// Package lookup orchestrates the catalog resolution flow for one user
// invocation.
//
// It turns raw input (free text or a catalog URL) into a slug candidate and
// free-text query, owns the current bearer credential for the invocation, and
// runs the two-stage resolution: an exact slug lookup first, escalating to a
// free-text search when the slug matches nothing. Every catalog call follows
// a bounded two-attempt scheme: on any failure the credential is refreshed
// exactly once and the same query retried exactly once.
//
// The package also defines the error taxonomy every failure maps onto:
// ErrInputAborted, ErrAuth, ErrNoResults, and ErrAPI.
package lookup
