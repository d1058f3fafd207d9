// Package testutil provides deterministic collaborators for logger tests:
// a resettable clock, fixed and sequenced request IDs, a recording sink, a static
// environment, a static stack capturer and a recording misuse reporter.
package testutil
