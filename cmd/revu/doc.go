// Revu is a CLI that gathers local git changes and submits them to an AI
// review service.
//
// It derives a minimal diff set for review: the fork point of the current
// branch (explicit or auto-detected from the reflog), the changed files with
// wide-context diffs and pre-change content, commit messages, and optional
// contributor stats.
//
// Usage:
//
//	revu review branch                  # review commits since the fork point
//	revu review branch --target main    # review against an explicit branch
//	revu review staged                  # review staged changes
//	revu review unstaged                # review unstaged changes
//	revu review all --include-untracked # review everything pending
//	revu config init                    # write a default config file
//
// See https://github.com/revulabs/revu for full documentation.
package main
