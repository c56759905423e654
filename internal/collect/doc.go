// Package collect derives the minimal change set for a review.
//
// The entry points are [Collector.CollectAgainstBase], which reviews commits
// since a fork point, and [Collector.CollectUncommitted], which reviews
// staged, unstaged, or all pending changes with optional untracked files.
// Both produce a [ReviewPayload] with bounded diffs and pre-change content.
//
// Supporting pieces are pure and independently testable: name-status parsing,
// ignore-glob matching, head and tail truncation, and remote URL
// normalization.
package collect
