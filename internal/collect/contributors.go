package collect

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// ContributorStats is the author summary for a commit range. Contributors
// are sorted by commit count descending; the top contributor doubles as the
// review author. An empty range yields the zero value, not an error.
type ContributorStats struct {
	AuthorEmail  string
	AuthorName   string
	Contributors []Contributor
}

// Contributors aggregates non-merge commit authorship between base and head.
// Counts are keyed by email; the display name is the last one seen for that
// email, falling back to the email itself when blank. Ties keep encounter
// order.
func (c *Collector) Contributors(ctx context.Context, base, head string) (ContributorStats, error) {
	lines, err := c.git.AuthorLog(ctx, base, head)
	if err != nil {
		return ContributorStats{}, err
	}

	counts := make(map[string]int)
	names := make(map[string]string)
	var order []string

	for _, line := range lines {
		email, name, _ := strings.Cut(line, "\t")
		email = strings.TrimSpace(email)
		if email == "" {
			continue
		}
		if counts[email] == 0 {
			order = append(order, email)
		}
		counts[email]++
		if name = strings.TrimSpace(name); name != "" {
			names[email] = name
		}
	}

	if len(order) == 0 {
		return ContributorStats{}, nil
	}

	contributors := make([]Contributor, 0, len(order))
	for _, email := range order {
		name := names[email]
		if name == "" {
			name = email
		}
		contributors = append(contributors, Contributor{
			Email:       email,
			Name:        name,
			CommitCount: counts[email],
		})
	}
	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].CommitCount > contributors[j].CommitCount
	})

	return ContributorStats{
		AuthorEmail:  contributors[0].Email,
		AuthorName:   contributors[0].Name,
		Contributors: contributors,
	}, nil
}

// attachContributors is best-effort: stats failure degrades the payload, it
// does not fail the review.
func (c *Collector) attachContributors(ctx context.Context, payload *ReviewPayload, fork string) {
	stats, err := c.Contributors(ctx, fork, "HEAD")
	if err != nil {
		c.log.Warn("contributor stats unavailable", zap.Error(err))
		return
	}
	payload.AuthorEmail = stats.AuthorEmail
	payload.AuthorName = stats.AuthorName
	payload.Contributors = stats.Contributors
}
