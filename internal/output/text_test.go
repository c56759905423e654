package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revulabs/revu/internal/api"
)

func TestTextWriter_NoComments(t *testing.T) {
	var buf strings.Builder
	w := &TextWriter{}
	err := w.Write(&buf, &api.ReviewResult{Summary: "all good"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "all good")
	assert.Contains(t, buf.String(), "Looks good!")
}

func TestTextWriter_GroupsCommentsByFile(t *testing.T) {
	result := &api.ReviewResult{
		Summary: "two nits",
		Comments: []api.ReviewComment{
			{Path: "b.go", Line: 10, Severity: "low", Message: "unused variable"},
			{Path: "a.go", Line: 3, Message: "missing error check"},
			{Path: "b.go", Line: 20, Message: "typo in comment"},
		},
	}
	var buf strings.Builder
	require.NoError(t, (&TextWriter{}).Write(&buf, result))
	out := buf.String()

	assert.Contains(t, out, "a.go:3")
	assert.Contains(t, out, "b.go:10 [LOW]")
	assert.Contains(t, out, "3 comment(s) across 2 file(s)")
	// Files render sorted.
	assert.Less(t, strings.Index(out, "missing error check"), strings.Index(out, "unused variable"))
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five", 9)
	assert.Equal(t, []string{"one two", "three", "four five"}, lines)

	assert.Nil(t, wrapText("", 10))
	assert.Equal(t, []string{"word"}, wrapText("word", 10))
}
