package collect

import (
	"context"
	"fmt"
)

// assemble builds the final payload around an already-computed change list.
// Repository identity comes from the origin remote, normalized to HTTPS.
func (c *Collector) assemble(ctx context.Context, messages []string, changes []FileChange) (*ReviewPayload, error) {
	remote, err := c.git.RemoteURL(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving origin remote: %w", err)
	}
	branch, err := c.git.CurrentBranch(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving current branch: %w", err)
	}
	if messages == nil {
		messages = []string{} // serialize as an empty list, not null
	}
	return &ReviewPayload{
		RepoURL:        NormalizeRemoteURL(remote),
		SourceBranch:   branch,
		CommitMessages: messages,
		ChangedFiles:   changes,
		TicketTag:      c.opts.TicketTag,
	}, nil
}
