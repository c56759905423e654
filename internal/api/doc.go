// Package api submits review payloads to the review service over HTTPS with
// bearer-token auth. Rate-limited requests are retried with exponential
// backoff; authentication failures are typed so the CLI can map them to a
// dedicated exit code. The response body is kept verbatim alongside the
// decoded summary and comments.
package api
