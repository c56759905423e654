package gitx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// messageDelimiter separates commit messages in log output. Chosen to be
// vanishingly unlikely inside a real message body so multi-line messages
// survive splitting intact.
const messageDelimiter = "<<<END-OF-COMMIT>>>"

// Repo exposes the git operations the collector needs, bound to a working
// directory. All operations are read-only except Fetch, which only updates
// remote-tracking refs.
type Repo struct {
	runner Runner
	dir    string
}

// NewRepo creates a Repo using runner for command execution. dir may be empty
// to use the process working directory.
func NewRepo(runner Runner, dir string) *Repo {
	return &Repo{runner: runner, dir: dir}
}

func (r *Repo) git(ctx context.Context, args ...string) (string, error) {
	out, err := r.runner.Run(ctx, r.dir, args...)
	return strings.TrimRight(out, "\n"), err
}

// CurrentBranch returns the short name of the checked-out branch.
func (r *Repo) CurrentBranch(ctx context.Context) (string, error) {
	return r.git(ctx, "rev-parse", "--abbrev-ref", "HEAD")
}

// RemoteURL returns the configured URL for the origin remote.
func (r *Repo) RemoteURL(ctx context.Context) (string, error) {
	return r.git(ctx, "remote", "get-url", "origin")
}

// RootPath returns the absolute path of the repository root.
func (r *Repo) RootPath(ctx context.Context) (string, error) {
	return r.git(ctx, "rev-parse", "--show-toplevel")
}

// RefExists reports whether ref resolves to a commit.
func (r *Repo) RefExists(ctx context.Context, ref string) bool {
	_, err := r.git(ctx, "rev-parse", "--verify", "--quiet", ref)
	return err == nil
}

// Fetch updates the remote-tracking ref for branch from origin. It never
// touches local branches or the working tree.
func (r *Repo) Fetch(ctx context.Context, branch string) error {
	_, err := r.git(ctx, "fetch", "origin", branch)
	return err
}

// MergeBase returns the most recent common ancestor of two refs.
func (r *Repo) MergeBase(ctx context.Context, a, b string) (string, error) {
	return r.git(ctx, "merge-base", a, b)
}

// Reflog returns the reference-change history for branch, newest first.
func (r *Repo) Reflog(ctx context.Context, branch string) (string, error) {
	return r.git(ctx, "reflog", "show", "--no-abbrev", branch)
}

// DiffNameStatus lists changed paths with status codes between two refs.
func (r *Repo) DiffNameStatus(ctx context.Context, base, head string) (string, error) {
	return r.git(ctx, "diff", "--name-status", base, head)
}

// StatusNameStatus lists pending changes with status codes for the given
// scope: staged (index vs HEAD), unstaged (working tree vs index), or both.
func (r *Repo) StatusNameStatus(ctx context.Context, staged bool) (string, error) {
	if staged {
		return r.git(ctx, "diff", "--name-status", "--cached")
	}
	return r.git(ctx, "diff", "--name-status")
}

// DiffFile returns the unified diff for one path between two refs with the
// requested number of unchanged context lines.
func (r *Repo) DiffFile(ctx context.Context, base, head, path string, contextLines int) (string, error) {
	return r.git(ctx, "diff", fmt.Sprintf("-U%d", contextLines), base, head, "--", path)
}

// DiffFilePending returns the unified diff for one pending path, staged or
// unstaged scope.
func (r *Repo) DiffFilePending(ctx context.Context, path string, staged bool, contextLines int) (string, error) {
	args := []string{"diff", fmt.Sprintf("-U%d", contextLines)}
	if staged {
		args = append(args, "--cached")
	}
	args = append(args, "--", path)
	return r.git(ctx, args...)
}

// Show returns the content of path as of ref.
func (r *Repo) Show(ctx context.Context, ref, path string) (string, error) {
	out, err := r.runner.Run(ctx, r.dir, "show", ref+":"+path)
	return out, err
}

// UntrackedFiles lists files that are neither tracked nor gitignored.
func (r *Repo) UntrackedFiles(ctx context.Context) ([]string, error) {
	out, err := r.git(ctx, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// ReadWorkingFile returns the current working-tree content of path relative
// to the repository directory. Untracked files have no git object to show,
// so this reads from disk.
func (r *Repo) ReadWorkingFile(path string) (string, error) {
	data, err := os.ReadFile(filepath.Join(r.dir, path))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// CommitMessages returns full commit messages between base and head, oldest
// last in git's default order, split on an explicit delimiter so message
// bodies keep their own newlines.
func (r *Repo) CommitMessages(ctx context.Context, base, head string) ([]string, error) {
	out, err := r.git(ctx, "log", "--format=%B"+messageDelimiter, base+".."+head)
	if err != nil {
		return nil, err
	}
	var messages []string
	for _, m := range strings.Split(out, messageDelimiter) {
		m = strings.TrimSpace(m)
		if m != "" {
			messages = append(messages, m)
		}
	}
	return messages, nil
}

// AuthorLog returns "email\tname" lines for non-merge commits between base
// and head.
func (r *Repo) AuthorLog(ctx context.Context, base, head string) ([]string, error) {
	out, err := r.git(ctx, "log", "--no-merges", "--format=%ae\t%an", base+".."+head)
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
