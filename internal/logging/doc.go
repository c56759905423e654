// Package logging builds the zap logger used across revu: console encoding
// to stderr, level controlled by REVU_LOG_LEVEL. Stdout stays reserved for
// review output.
package logging
