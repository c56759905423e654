package collect

import (
	"errors"
	"fmt"
)

// ErrNoChanges signals that an uncommitted review found nothing to submit.
// Callers should treat this as a clean exit, not a failure.
var ErrNoChanges = errors.New("no changes found to review")

// ErrForkPointNotFound signals that reflog inspection could not locate the
// branch creation point. The user must supply an explicit target branch.
var ErrForkPointNotFound = errors.New("could not determine fork point from branch history; specify a target branch with --target")

// BranchNotFoundError reports that an explicit target branch does not exist
// in either local or remote-tracking form.
type BranchNotFoundError struct {
	Branch string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %q not found; fetch it first or check the name", e.Branch)
}

// IsBranchNotFound reports whether err wraps a BranchNotFoundError.
func IsBranchNotFound(err error) bool {
	var bnf *BranchNotFoundError
	return errors.As(err, &bnf)
}
