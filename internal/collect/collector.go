package collect

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Git is the repository capability the collector needs. *gitx.Repo satisfies
// it; tests inject fakes.
type Git interface {
	CurrentBranch(ctx context.Context) (string, error)
	RemoteURL(ctx context.Context) (string, error)
	RefExists(ctx context.Context, ref string) bool
	Fetch(ctx context.Context, branch string) error
	MergeBase(ctx context.Context, a, b string) (string, error)
	Reflog(ctx context.Context, branch string) (string, error)
	DiffNameStatus(ctx context.Context, base, head string) (string, error)
	StatusNameStatus(ctx context.Context, staged bool) (string, error)
	DiffFile(ctx context.Context, base, head, path string, contextLines int) (string, error)
	DiffFilePending(ctx context.Context, path string, staged bool, contextLines int) (string, error)
	Show(ctx context.Context, ref, path string) (string, error)
	UntrackedFiles(ctx context.Context) ([]string, error)
	ReadWorkingFile(path string) (string, error)
	CommitMessages(ctx context.Context, base, head string) ([]string, error)
	AuthorLog(ctx context.Context, base, head string) ([]string, error)
}

// Options tunes how changes are gathered.
type Options struct {
	// ContextLines of unchanged code around each hunk. Wide by default so
	// reviewers see the surrounding logic.
	ContextLines int
	// MaxLines bounds per-file diff and content size.
	MaxLines int
	// Workers bounds concurrent per-file diff/content fetches. 1 disables
	// concurrency.
	Workers int
	// TicketTag is an opaque tag merged into the payload for the caller's
	// ticket system.
	TicketTag string
	// WithContributors enables author/contributor stats on base reviews.
	WithContributors bool
}

func (o Options) withDefaults() Options {
	if o.ContextLines <= 0 {
		o.ContextLines = 15
	}
	if o.MaxLines <= 0 {
		o.MaxLines = DefaultMaxLines
	}
	if o.Workers <= 0 {
		o.Workers = 4
	}
	return o
}

// Collector builds review payloads from repository state.
type Collector struct {
	git  Git
	log  *zap.Logger
	opts Options
}

// New creates a Collector. A nil logger falls back to a no-op logger.
func New(git Git, log *zap.Logger, opts Options) *Collector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Collector{git: git, log: log, opts: opts.withDefaults()}
}

// CollectAgainstBase builds a payload for everything committed since the fork
// point with targetBranch (or the auto-detected branch creation point when
// targetBranch is empty). Files matching an ignore pattern are dropped.
func (c *Collector) CollectAgainstBase(ctx context.Context, targetBranch string, ignorePatterns []string) (*ReviewPayload, error) {
	fork, err := c.ResolveForkPoint(ctx, targetBranch)
	if err != nil {
		return nil, err
	}

	messages, err := c.git.CommitMessages(ctx, fork, "HEAD")
	if err != nil {
		return nil, fmt.Errorf("listing commit messages: %w", err)
	}

	nameStatus, err := c.git.DiffNameStatus(ctx, fork, "HEAD")
	if err != nil {
		return nil, fmt.Errorf("listing changed files: %w", err)
	}

	changes := ParseNameStatus(nameStatus)
	changes = c.filterIgnored(changes, ignorePatterns)

	err = c.forEach(ctx, len(changes), func(ctx context.Context, i int) error {
		return c.fillCommitted(ctx, &changes[i], fork)
	})
	if err != nil {
		return nil, err
	}

	payload, err := c.assemble(ctx, messages, changes)
	if err != nil {
		return nil, err
	}
	if c.opts.WithContributors {
		c.attachContributors(ctx, payload, fork)
	}
	return payload, nil
}

// CollectUncommitted builds a payload for pending changes in the given scope.
// When both the status list and the collected changes are empty it returns
// ErrNoChanges, which callers should treat as a clean exit.
func (c *Collector) CollectUncommitted(ctx context.Context, mode UncommittedMode, includeUntracked bool) (*ReviewPayload, error) {
	tracked, err := c.pendingChanges(ctx, mode)
	if err != nil {
		return nil, err
	}

	err = c.forEach(ctx, len(tracked), func(ctx context.Context, i int) error {
		return c.fillPending(ctx, &tracked[i].FileChange, tracked[i].staged)
	})
	if err != nil {
		return nil, err
	}

	changes := make([]FileChange, 0, len(tracked))
	for _, t := range tracked {
		changes = append(changes, t.FileChange)
	}

	if includeUntracked {
		untracked, err := c.untrackedChanges(ctx, changes)
		if err != nil {
			return nil, err
		}
		changes = append(changes, untracked...)
	}

	if len(changes) == 0 {
		return nil, ErrNoChanges
	}

	return c.assemble(ctx, nil, changes)
}

// pendingChange tags a FileChange with the scope its diff must come from.
// In "all" mode a file present in both scopes keeps its staged entry, so the
// staged version of the change is what gets reviewed.
type pendingChange struct {
	FileChange
	staged bool
}

func (c *Collector) pendingChanges(ctx context.Context, mode UncommittedMode) ([]pendingChange, error) {
	var out []pendingChange
	seen := make(map[string]bool)

	add := func(text string, staged bool) {
		for _, fc := range ParseNameStatus(text) {
			if seen[fc.Path] {
				continue
			}
			seen[fc.Path] = true
			out = append(out, pendingChange{FileChange: fc, staged: staged})
		}
	}

	if mode == ModeStaged || mode == ModeAll {
		text, err := c.git.StatusNameStatus(ctx, true)
		if err != nil {
			return nil, fmt.Errorf("listing staged changes: %w", err)
		}
		add(text, true)
	}
	if mode == ModeUnstaged || mode == ModeAll {
		text, err := c.git.StatusNameStatus(ctx, false)
		if err != nil {
			return nil, fmt.Errorf("listing unstaged changes: %w", err)
		}
		add(text, false)
	}
	return out, nil
}

// fillCommitted fetches the diff and pre-change content for one file in a
// base comparison.
func (c *Collector) fillCommitted(ctx context.Context, fc *FileChange, fork string) error {
	diff, err := c.git.DiffFile(ctx, fork, "HEAD", fc.Path, c.opts.ContextLines)
	if err != nil {
		return fmt.Errorf("diffing %s: %w", fc.Path, err)
	}
	fc.Diff = diff
	if fc.Status == StatusDeleted {
		fc.Diff = Truncate(fc.Diff, c.opts.MaxLines)
	}
	c.fillContent(ctx, fc, fork)
	return nil
}

// fillPending is fillCommitted for uncommitted changes: the diff comes from
// the staged or unstaged scope and content from the last commit.
func (c *Collector) fillPending(ctx context.Context, fc *FileChange, staged bool) error {
	diff, err := c.git.DiffFilePending(ctx, fc.Path, staged, c.opts.ContextLines)
	if err != nil {
		return fmt.Errorf("diffing %s: %w", fc.Path, err)
	}
	fc.Diff = diff
	if fc.Status == StatusDeleted {
		fc.Diff = Truncate(fc.Diff, c.opts.MaxLines)
	}
	c.fillContent(ctx, fc, "HEAD")
	return nil
}

// fillContent loads the pre-change snapshot of the file. Missing content is
// tolerated per file: added-then-modified ranges legitimately have no base
// blob, so a failed show logs a warning and leaves content empty.
func (c *Collector) fillContent(ctx context.Context, fc *FileChange, ref string) {
	if fc.Status == StatusAdded {
		return
	}
	content, err := c.git.Show(ctx, ref, fc.OldPath)
	if err != nil {
		c.log.Warn("pre-change content unavailable",
			zap.String("path", fc.OldPath), zap.Error(err))
		return
	}
	fc.Content = Truncate(content, c.opts.MaxLines)
}

// untrackedChanges folds untracked files into the change set as synthetic
// additions: the "diff" is the whole file prefixed as added lines. Paths
// already collected from the status list are skipped.
func (c *Collector) untrackedChanges(ctx context.Context, existing []FileChange) ([]FileChange, error) {
	paths, err := c.git.UntrackedFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing untracked files: %w", err)
	}

	have := make(map[string]bool, len(existing))
	for _, fc := range existing {
		have[fc.Path] = true
	}

	var out []FileChange
	for _, path := range paths {
		if have[path] {
			continue
		}
		content, err := c.git.ReadWorkingFile(path)
		if err != nil {
			c.log.Warn("skipping unreadable untracked file",
				zap.String("path", path), zap.Error(err))
			continue
		}
		out = append(out, FileChange{
			Path:    path,
			OldPath: path,
			Status:  StatusAdded,
			Diff:    syntheticAddDiff(Truncate(content, c.opts.MaxLines)),
		})
	}
	return out, nil
}

func syntheticAddDiff(content string) string {
	lines := strings.Split(content, "\n")
	var b strings.Builder
	for _, line := range lines {
		b.WriteString("+")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (c *Collector) filterIgnored(changes []FileChange, patterns []string) []FileChange {
	if len(patterns) == 0 {
		return changes
	}
	kept := changes[:0]
	for _, fc := range changes {
		if MatchesAny(fc.Path, patterns) {
			c.log.Info("ignoring file", zap.String("path", fc.Path))
			continue
		}
		kept = append(kept, fc)
	}
	return kept
}

// forEach runs fn for indexes 0..n-1 on a bounded worker pool. Results land
// in place, keyed by index, so output order never depends on completion
// order. The first error wins and cancels the rest.
func (c *Collector) forEach(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n == 0 {
		return nil
	}
	workers := c.opts.Workers
	if workers > n {
		workers = n
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	indexes := make(chan int)
	errs := make(chan error, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				if ctx.Err() != nil {
					return
				}
				if err := fn(ctx, i); err != nil {
					errs <- err
					cancel()
					return
				}
			}
		}()
	}

feed:
	for i := 0; i < n; i++ {
		select {
		case indexes <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indexes)
	wg.Wait()
	close(errs)
	return <-errs
}
