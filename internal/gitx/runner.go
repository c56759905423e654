package gitx

import (
	"context"
	"fmt"
	"os/exec"
	"time"
)

// Runner executes a git command and returns its captured stdout. It exists so
// repository operations can be driven by fixtures in tests.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// ExecRunner shells out to the git binary. Each invocation gets its own
// timeout so a hung subprocess cannot stall the whole review.
type ExecRunner struct {
	Timeout time.Duration
}

// DefaultTimeout bounds a single git invocation.
const DefaultTimeout = 30 * time.Second

// NewExecRunner returns an ExecRunner with the default per-call timeout.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Timeout: DefaultTimeout}
}

func (r *ExecRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	if dir != "" {
		cmd.Dir = dir
	}
	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("git %s: timed out after %s", argsLabel(args), timeout)
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("git %s: %s: %s", argsLabel(args), err, string(exitErr.Stderr))
		}
		return "", fmt.Errorf("git %s: %w", argsLabel(args), err)
	}
	return string(out), nil
}

func argsLabel(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
