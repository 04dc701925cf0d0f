package git

import "os/exec"

// Service defines the contract for all Git operations.
// The TUI depends on this interface, never on exec.Command directly.
// This makes the application testable via mock implementations.
type Service interface {
	// ── Repository info ──────────────────────────────────────────────
	RepoRoot() string
	GitDir() string
	Head() (string, error)
	AheadBehind() (ahead, behind int, err error)
	IsClean() (bool, error)

	// ── Status & staging ─────────────────────────────────────────────
	Status() (*StatusResult, error)
	Stage(paths ...string) error
	StageModified() (int, error)
	Unstage(paths ...string) error
	Discard(paths ...string) error

	// ── Commits ──────────────────────────────────────────────────────
	Commit(message string) error

	// ── Content ──────────────────────────────────────────────────────
	Diff(staged bool, path string) (string, error)
	UntrackedContent(path string) (string, error)

	// InteractiveStageCmd builds the `git add -p` command for the given
	// path. The caller owns terminal suspension around its execution.
	InteractiveStageCmd(path string) *exec.Cmd
}
