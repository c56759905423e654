package collect

import "strings"

// DefaultMaxLines bounds diff and pre-change content size per file.
const DefaultMaxLines = 2000

const truncationMarker = "... [truncated] ..."

// Truncate bounds text to maxLines lines by keeping the head and tail halves
// and dropping the middle behind a marker. Text at or under the limit is
// returned unchanged.
func Truncate(text string, maxLines int) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= maxLines {
		return text
	}
	half := maxLines / 2
	head := strings.Join(lines[:half], "\n")
	tail := strings.Join(lines[len(lines)-half:], "\n")
	return head + "\n\n" + truncationMarker + "\n\n" + tail
}
