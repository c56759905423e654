package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetFlags() {
	flagEndpoint = ""
	flagTicket = ""
	flagContextLines = 0
	flagMaxLines = 0
	flagWorkers = 0
	flagIgnore = ""
}

func TestBuildOverrides_EmptyByDefault(t *testing.T) {
	resetFlags()
	assert.Empty(t, buildOverrides())
}

func TestBuildOverrides_CarriesSetFlags(t *testing.T) {
	resetFlags()
	defer resetFlags()

	flagEndpoint = "https://example.com/reviews"
	flagTicket = "PROJ-7"
	flagContextLines = 20
	flagIgnore = "dist/**"

	m := buildOverrides()
	assert.Equal(t, map[string]string{
		"endpoint":     "https://example.com/reviews",
		"ticketSystem": "PROJ-7",
		"contextLines": "20",
		"ignore":       "dist/**",
	}, m)
}

func TestExitCodesAreDistinct(t *testing.T) {
	codes := []int{ExitSuccess, ExitUsageError, ExitAuthError, ExitRuntimeError}
	seen := make(map[int]bool)
	for _, c := range codes {
		assert.False(t, seen[c])
		seen[c] = true
	}
}
