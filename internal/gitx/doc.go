// Package gitx executes git commands and exposes the repository operations
// the collector needs: branch and remote inspection, ref verification,
// fetch, merge-base, reflog, name-status listings, per-file diffs, and
// content snapshots.
//
// All execution goes through the [Runner] interface so tests can substitute
// canned fixtures. The real [ExecRunner] applies a per-invocation timeout so
// a hung git subprocess cannot stall a review.
package gitx
