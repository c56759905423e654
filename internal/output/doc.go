// Package output renders review results for display or machine consumption.
//
// Two formats are supported: text (human-readable terminal output, the
// default) and json (the raw service response, pretty-printed). Use
// [WriteResult] to render to stdout or a file.
package output
