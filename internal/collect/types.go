package collect

import "encoding/json"

// Status is the single-letter change classification from git name-status output.
type Status string

const (
	StatusAdded    Status = "A"
	StatusModified Status = "M"
	StatusDeleted  Status = "D"
	StatusRenamed  Status = "R"
	StatusCopied   Status = "C"
)

// FileChange describes one file's state in a comparison. OldPath equals Path
// unless the file was renamed or copied. Content holds the pre-change file
// body and is empty for added files.
type FileChange struct {
	Path    string
	OldPath string
	Status  Status
	Diff    string
	Content string
}

// Renamed reports whether the change carries a distinct old path.
func (fc FileChange) Renamed() bool {
	return fc.Status == StatusRenamed || fc.Status == StatusCopied
}

type fileChangeWire struct {
	Path    string `json:"path"`
	OldPath string `json:"old_path,omitempty"`
	Status  string `json:"status"`
	Diff    string `json:"diff"`
	Content string `json:"content,omitempty"`
}

// MarshalJSON emits old_path only for renames and copies; for every other
// status the field is absent rather than duplicating path.
func (fc FileChange) MarshalJSON() ([]byte, error) {
	w := fileChangeWire{
		Path:    fc.Path,
		Status:  string(fc.Status),
		Diff:    fc.Diff,
		Content: fc.Content,
	}
	if fc.Renamed() {
		w.OldPath = fc.OldPath
	}
	return json.Marshal(w)
}

// Contributor aggregates commit activity for one author email.
type Contributor struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	CommitCount int    `json:"commit_count"`
}

// ReviewPayload is the submission unit handed to the review API. ChangedFiles
// ordering is stable and mirrors the underlying change list.
type ReviewPayload struct {
	RepoURL        string        `json:"repo_url"`
	SourceBranch   string        `json:"source_branch"`
	CommitMessages []string      `json:"commit_messages"`
	ChangedFiles   []FileChange  `json:"changed_files"`
	AuthorEmail    string        `json:"author_email,omitempty"`
	AuthorName     string        `json:"author_name,omitempty"`
	Contributors   []Contributor `json:"contributors,omitempty"`
	TicketTag      string        `json:"ticket_tag,omitempty"`
}

// UncommittedMode selects which pending changes a review covers.
type UncommittedMode string

const (
	ModeStaged   UncommittedMode = "staged"
	ModeUnstaged UncommittedMode = "unstaged"
	ModeAll      UncommittedMode = "all"
)
