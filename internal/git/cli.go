package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// ErrNotARepo is returned when the path is not inside a Git repository.
var ErrNotARepo = errors.New("not a git repository")

// cmdTimeout is the maximum duration any single git command may run.
// Prevents hangs on huge repos or misbehaving filesystems.
const cmdTimeout = 30 * time.Second

// CLIService implements Service by shelling out to the git CLI.
// Optimised for large monorepos:
//   - GIT_OPTIONAL_LOCKS=0 on all read commands (no lock contention)
//   - Context-based timeouts prevent hangs
//   - Stdout and stderr kept separate so stderr noise cannot corrupt output
type CLIService struct {
	root   string // Absolute path to the repo root.
	gitDir string // Path to the .git directory.
}

// Compile-time check that CLIService implements Service.
var _ Service = (*CLIService)(nil)

// NewCLIService opens a Git repository at the given path.
func NewCLIService(path string) (*CLIService, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	topLevel, err := runGit(abs, nil, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, ErrNotARepo
	}
	gitDir, err := runGit(abs, nil, "rev-parse", "--git-dir")
	if err != nil {
		return nil, fmt.Errorf("finding .git directory: %w", err)
	}
	gd := strings.TrimSpace(gitDir)
	if !filepath.IsAbs(gd) {
		gd = filepath.Join(strings.TrimSpace(topLevel), gd)
	}
	return &CLIService{
		root:   strings.TrimSpace(topLevel),
		gitDir: gd,
	}, nil
}

// RepoRoot returns the repository root path.
func (s *CLIService) RepoRoot() string { return s.root }

// GitDir returns the path to the .git directory.
func (s *CLIService) GitDir() string { return s.gitDir }

// ── helpers ─────────────────────────────────────────────────────────────────

// readEnv is the environment set on all read-only git commands.
// GIT_OPTIONAL_LOCKS=0 prevents git from acquiring optional locks,
// which is critical in large repos where lock contention stalls readers.
var readEnv = []string{"GIT_OPTIONAL_LOCKS=0"}

// run executes a git command at the repo root with read-optimised env.
func (s *CLIService) run(args ...string) (string, error) {
	return runGit(s.root, readEnv, args...)
}

// runWrite executes a write git command (no optional-locks override).
func (s *CLIService) runWrite(args ...string) (string, error) {
	return runGit(s.root, nil, args...)
}

// runGit executes a git command with a context timeout.
// Stdout and stderr are separated so stderr noise doesn't corrupt output.
func runGit(dir string, extraEnv []string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = strings.TrimSpace(stdout.String())
		}
		return "", fmt.Errorf("git %s: %s: %w", strings.Join(args, " "), errMsg, err)
	}
	return stdout.String(), nil
}

// ── Repository info ─────────────────────────────────────────────────────────

// Head returns the current HEAD ref.
func (s *CLIService) Head() (string, error) {
	// Fast path: read symbolic ref directly, no optional locks.
	ref, err := s.run("symbolic-ref", "--short", "HEAD")
	if err != nil {
		hash, hashErr := s.run("rev-parse", "--short", "HEAD")
		if hashErr != nil {
			return "", fmt.Errorf("getting HEAD: %w", err)
		}
		return strings.TrimSpace(hash), nil
	}
	return strings.TrimSpace(ref), nil
}

// AheadBehind returns how many commits ahead/behind the upstream.
func (s *CLIService) AheadBehind() (int, int, error) {
	out, err := s.run("rev-list", "--left-right", "--count", "HEAD...@{upstream}")
	if err != nil {
		return 0, 0, nil //nolint:nilerr // no upstream is not an error
	}
	parts := strings.Fields(strings.TrimSpace(out))
	if len(parts) != 2 {
		return 0, 0, nil
	}
	var ahead, behind int
	_, _ = fmt.Sscan(parts[0], &ahead)
	_, _ = fmt.Sscan(parts[1], &behind)
	return ahead, behind, nil
}

// IsClean reports whether the worktree is clean.
func (s *CLIService) IsClean() (bool, error) {
	out, err := s.run("status", "--porcelain", "--untracked-files=no")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) == "", nil
}

// ── Status & staging ────────────────────────────────────────────────────────

// Status returns the current working tree status.
func (s *CLIService) Status() (*StatusResult, error) {
	// --porcelain=v1 -z: machine-parseable, NUL-delimited. Optional locks
	// are already disabled via GIT_OPTIONAL_LOCKS=0 on all reads.
	out, err := s.run("status", "--porcelain=v1", "-z", "--untracked-files=normal")
	if err != nil {
		return nil, fmt.Errorf("getting status: %w", err)
	}
	return ParseStatusOutput(out), nil
}

// Stage stages the given paths.
func (s *CLIService) Stage(paths ...string) error {
	args := append([]string{"add", "--"}, paths...)
	_, err := s.runWrite(args...)
	return err
}

// StageModified stages every modified tracked file (untracked files are
// left alone) and returns how many were staged.
func (s *CLIService) StageModified() (int, error) {
	res, err := s.Status()
	if err != nil {
		return 0, err
	}
	if len(res.Unstaged) == 0 {
		return 0, nil
	}
	paths := make([]string, 0, len(res.Unstaged))
	for _, f := range res.Unstaged {
		paths = append(paths, f.Path)
	}
	if err := s.Stage(paths...); err != nil {
		return 0, err
	}
	return len(paths), nil
}

// Unstage unstages the given paths.
func (s *CLIService) Unstage(paths ...string) error {
	args := append([]string{"reset", "HEAD", "--"}, paths...)
	_, err := s.runWrite(args...)
	return err
}

// Discard restores the given paths to their HEAD state.
func (s *CLIService) Discard(paths ...string) error {
	args := append([]string{"restore", "--"}, paths...)
	_, err := s.runWrite(args...)
	return err
}

// ── Commits ─────────────────────────────────────────────────────────────────

// Commit creates a new commit with the given message.
func (s *CLIService) Commit(message string) error {
	_, err := s.runWrite("commit", "-m", message)
	return err
}

// ── Content ─────────────────────────────────────────────────────────────────

// Diff returns the diff for a path.
func (s *CLIService) Diff(staged bool, path string) (string, error) {
	args := []string{"diff", "--color=never", "--no-ext-diff"}
	if staged {
		args = append(args, "--cached")
	}
	if path != "" {
		args = append(args, "--", path)
	}
	out, err := s.run(args...)
	if err != nil {
		return "", err
	}
	return out, nil
}

// UntrackedContent reads the content of an untracked file so it can be
// shown in place of a diff.
func (s *CLIService) UntrackedContent(path string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.root, path))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// InteractiveStageCmd builds the interactive hunk-staging command for the
// given path, running at the repo root.
func (s *CLIService) InteractiveStageCmd(path string) *exec.Cmd {
	cmd := exec.Command("git", "add", "-p", "--", path)
	cmd.Dir = s.root
	return cmd
}
