// Package registry maps provider names to factories for a capability type.
//
// A registry owns its state and hands out a freshly constructed instance on
// every New call, so no two callers ever share a provider. Lookups are safe
// for concurrent use; the dispatch that follows a lookup is not the
// registry's business.
package registry
