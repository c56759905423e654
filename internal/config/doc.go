// Package config loads and merges revu configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (REVU_API_KEY, REVU_ENDPOINT, REVU_IGNORE, etc.),
//     including values folded in from a .env file in the working directory
//  3. Config file ($XDG_CONFIG_HOME/revu/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config] and [SetField] to update a single
// key in the config file.
package config
