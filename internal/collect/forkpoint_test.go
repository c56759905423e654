package collect

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveForkPoint_ExplicitBranchUsesRemoteTracking(t *testing.T) {
	git := featureRepo()
	c := New(git, nil, Options{})

	fork, err := c.ResolveForkPoint(context.Background(), "main")
	require.NoError(t, err)
	assert.Equal(t, "abc123", fork)
	assert.Equal(t, []string{"main"}, git.fetched)
}

func TestResolveForkPoint_RemoteTrackingNameVerifiedNotFetched(t *testing.T) {
	git := featureRepo()
	c := New(git, nil, Options{})

	fork, err := c.ResolveForkPoint(context.Background(), "origin/main")
	require.NoError(t, err)
	assert.Equal(t, "abc123", fork)
	assert.Empty(t, git.fetched, "an already remote-tracking ref is verified, not fetched")
}

func TestResolveForkPoint_RemoteTrackingMissing(t *testing.T) {
	git := featureRepo()
	c := New(git, nil, Options{})

	_, err := c.ResolveForkPoint(context.Background(), "origin/release")
	assert.True(t, IsBranchNotFound(err))
}

func TestResolveForkPoint_LocalBranchMissing(t *testing.T) {
	git := featureRepo()
	c := New(git, nil, Options{})

	_, err := c.ResolveForkPoint(context.Background(), "no-such-branch")
	assert.True(t, IsBranchNotFound(err))

	var bnf *BranchNotFoundError
	require.ErrorAs(t, err, &bnf)
	assert.Equal(t, "no-such-branch", bnf.Branch)
}

func TestResolveForkPoint_FetchFailureFallsBackToLocal(t *testing.T) {
	git := featureRepo()
	git.fetchErr = errors.New("network unreachable")
	c := New(git, nil, Options{})

	fork, err := c.ResolveForkPoint(context.Background(), "main")
	require.NoError(t, err, "fetch failure is a warning, not an error")
	assert.Equal(t, "abc123", fork, "merge-base computed against the local ref")
}

func TestResolveForkPoint_AutoDetectFromReflog(t *testing.T) {
	git := featureRepo()
	c := New(git, nil, Options{})

	want := "abc123def456abc123def456abc123def456abc1"
	for i := 0; i < 3; i++ {
		fork, err := c.ResolveForkPoint(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, want, fork, "resolution must be deterministic")
	}
}

func TestResolveForkPoint_AutoDetectNoHash(t *testing.T) {
	git := featureRepo()
	git.reflogs["feature"] = "not a hash line"
	c := New(git, nil, Options{})

	_, err := c.ResolveForkPoint(context.Background(), "")
	assert.ErrorIs(t, err, ErrForkPointNotFound)
}

func TestResolveForkPoint_AutoDetectShortHashRejected(t *testing.T) {
	git := featureRepo()
	// Abbreviated hashes do not satisfy the full-hash pattern.
	git.reflogs["feature"] = "def456 feature@{0}: branch: Created from main"
	c := New(git, nil, Options{})

	_, err := c.ResolveForkPoint(context.Background(), "")
	assert.ErrorIs(t, err, ErrForkPointNotFound)
}
