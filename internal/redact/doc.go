// Package redact removes secrets from diffs and file content before they
// leave the machine.
//
// Detection uses regex heuristics covering common secret shapes: API keys,
// JWTs, private keys, AWS credentials, bearer tokens, and provider-specific
// tokens (GitHub, Slack). [Payload] scrubs a whole review payload in place.
package redact
