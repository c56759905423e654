// Package cli wires together the Cobra command tree for the revu binary.
//
// It defines the root command and all subcommands (review, config, cache,
// version), binds flags, reads configuration, drives the change collector,
// and returns deterministic exit codes for scripting.
package cli
