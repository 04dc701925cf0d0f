package git

// StatusCode represents a single-character Git status indicator.
type StatusCode byte

// Git status codes as single-byte indicators.
const (
	StatusUnmodified  StatusCode = ' '
	StatusModified    StatusCode = 'M'
	StatusTypeChanged StatusCode = 'T'
	StatusAdded       StatusCode = 'A'
	StatusDeleted     StatusCode = 'D'
	StatusRenamed     StatusCode = 'R'
	StatusCopied      StatusCode = 'C'
	StatusUnmerged    StatusCode = 'U'
	StatusUntracked   StatusCode = '?'
)

// String returns the single-character representation.
func (s StatusCode) String() string { return string(s) }

// Label returns a human-readable description of the status.
func (s StatusCode) Label() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusTypeChanged:
		return "typechange"
	case StatusAdded:
		return "new file"
	case StatusDeleted:
		return "deleted"
	case StatusRenamed:
		return "renamed"
	case StatusCopied:
		return "copied"
	case StatusUnmerged:
		return "updated"
	case StatusUntracked:
		return "untracked"
	default:
		return "modified"
	}
}

// Key identifies one logical status entry across refreshes. A path that is
// partially staged produces two entries with distinct keys: (path, true)
// and (path, false).
type Key struct {
	Path   string
	Staged bool
}

// FileStatus is one entry of the working-tree status: a single change on
// either the index side (Staged=true) or the worktree side (Staged=false).
type FileStatus struct {
	Code     StatusCode
	Path     string
	OrigPath string // Only set for renames/copies.
	Staged   bool
}

// Key returns the identity key for this entry.
func (f FileStatus) Key() Key { return Key{Path: f.Path, Staged: f.Staged} }

// Untracked reports whether this entry is an untracked file.
func (f FileStatus) Untracked() bool { return f.Code == StatusUntracked }

// StatusResult holds the categorised status of the entire repository.
type StatusResult struct {
	Staged    []FileStatus
	Unstaged  []FileStatus
	Untracked []FileStatus
}

// TotalCount returns the total number of entries across all categories.
func (sr *StatusResult) TotalCount() int {
	return len(sr.Staged) + len(sr.Unstaged) + len(sr.Untracked)
}
