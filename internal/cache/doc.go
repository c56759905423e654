// Package cache provides a file-based cache for review responses.
//
// Entries are keyed by a SHA-256 hash of the submitted payload, so an
// unchanged change set is never reviewed twice within the TTL. Expired
// entries are dropped on read. The default cache directory is
// $XDG_CACHE_HOME/revu (or the OS-appropriate equivalent). Payloads are
// hashed after secret redaction.
package cache
