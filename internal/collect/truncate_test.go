package collect

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func genLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return strings.Join(lines, "\n")
}

func TestTruncate_UnderLimitIsIdentity(t *testing.T) {
	for _, n := range []int{0, 1, 5, 99, 100} {
		text := genLines(n)
		assert.Equal(t, text, Truncate(text, 100), "n=%d", n)
	}
}

func TestTruncate_KeepsHeadAndTail(t *testing.T) {
	text := genLines(200)
	got := Truncate(text, 100)

	assert.Contains(t, got, "... [truncated] ...")
	// First 50 and last 50 original lines survive.
	assert.True(t, strings.HasPrefix(got, "line 0\n"))
	assert.Contains(t, got, "line 49")
	assert.Contains(t, got, "line 150")
	assert.True(t, strings.HasSuffix(got, "line 199"))
	// Strictly-middle lines are gone.
	assert.NotContains(t, got, "line 50\n")
	assert.NotContains(t, got, "line 100\n")
	assert.NotContains(t, got, "line 149\n")
}

func TestTruncate_OddLimitUsesFloorHalves(t *testing.T) {
	text := genLines(10)
	got := Truncate(text, 5)
	lines := strings.Split(got, "\n")
	// 2 head + blank + marker + blank + 2 tail
	assert.Equal(t, []string{"line 0", "line 1", "", "... [truncated] ...", "", "line 8", "line 9"}, lines)
}
