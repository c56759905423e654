package collect

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var fullHashRe = regexp.MustCompile(`^[0-9a-f]{40}`)

// ResolveForkPoint determines the commit to diff against. With an explicit
// target branch the fork point is the merge-base of that branch and HEAD,
// preferring the freshly-fetched remote-tracking ref when the fetch succeeds.
// Without a target the branch's reflog is inspected: its oldest entry is the
// branch creation event, and the hash at the start of that line is the fork
// point.
func (c *Collector) ResolveForkPoint(ctx context.Context, targetBranch string) (string, error) {
	if targetBranch != "" {
		ref, err := c.resolveTargetRef(ctx, targetBranch)
		if err != nil {
			return "", err
		}
		return c.git.MergeBase(ctx, ref, "HEAD")
	}

	branch, err := c.git.CurrentBranch(ctx)
	if err != nil {
		return "", err
	}
	reflog, err := c.git.Reflog(ctx, branch)
	if err != nil {
		return "", err
	}
	lines := strings.Split(strings.TrimSpace(reflog), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	hash := fullHashRe.FindString(last)
	if hash == "" {
		return "", ErrForkPointNotFound
	}
	return hash, nil
}

// resolveTargetRef validates the target branch and promotes it to its
// remote-tracking form when possible. A failed fetch downgrades to the local
// ref with a warning; a missing branch is a hard error.
func (c *Collector) resolveTargetRef(ctx context.Context, target string) (string, error) {
	if strings.HasPrefix(target, "origin/") {
		if !c.git.RefExists(ctx, target) {
			return "", &BranchNotFoundError{Branch: target}
		}
		return target, nil
	}

	if !c.git.RefExists(ctx, target) {
		return "", &BranchNotFoundError{Branch: target}
	}

	if err := c.git.Fetch(ctx, target); err != nil {
		c.log.Warn("fetch failed, comparing against local branch",
			zap.String("branch", target), zap.Error(err))
		return target, nil
	}
	return "origin/" + target, nil
}
