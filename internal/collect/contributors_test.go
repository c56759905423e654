package collect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContributors_AggregatesAndSorts(t *testing.T) {
	git := featureRepo()
	git.authors = []string{
		"bo@example.com\tBo",
		"al@example.com\tAl",
		"bo@example.com\tBo",
		"cy@example.com\tCy",
		"bo@example.com\tBo",
	}
	c := New(git, nil, Options{})

	stats, err := c.Contributors(context.Background(), "abc123", "HEAD")
	require.NoError(t, err)

	assert.Equal(t, "bo@example.com", stats.AuthorEmail)
	assert.Equal(t, "Bo", stats.AuthorName)
	require.Len(t, stats.Contributors, 3)
	assert.Equal(t, Contributor{Email: "bo@example.com", Name: "Bo", CommitCount: 3}, stats.Contributors[0])
	// Tie between al and cy keeps encounter order.
	assert.Equal(t, "al@example.com", stats.Contributors[1].Email)
	assert.Equal(t, "cy@example.com", stats.Contributors[2].Email)
}

func TestContributors_BlankNameFallsBackToEmail(t *testing.T) {
	git := featureRepo()
	git.authors = []string{"anon@example.com\t"}
	c := New(git, nil, Options{})

	stats, err := c.Contributors(context.Background(), "abc123", "HEAD")
	require.NoError(t, err)
	assert.Equal(t, "anon@example.com", stats.AuthorName)
}

func TestContributors_LastSeenNameWins(t *testing.T) {
	git := featureRepo()
	git.authors = []string{
		"al@example.com\tAl Smith",
		"al@example.com\tAl S.",
	}
	c := New(git, nil, Options{})

	stats, err := c.Contributors(context.Background(), "abc123", "HEAD")
	require.NoError(t, err)
	assert.Equal(t, "Al S.", stats.AuthorName)
}

func TestContributors_EmptyRange(t *testing.T) {
	git := featureRepo()
	c := New(git, nil, Options{})

	stats, err := c.Contributors(context.Background(), "abc123", "HEAD")
	require.NoError(t, err)
	assert.Empty(t, stats.AuthorEmail)
	assert.Empty(t, stats.AuthorName)
	assert.Empty(t, stats.Contributors)
}
