package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Akashdeep-Patra/zed-git-stage/internal/git"
	"github.com/Akashdeep-Patra/zed-git-stage/internal/ui/components"
	tea "github.com/charmbracelet/bubbletea"
)

const dialogTagDiscard = "discard"

var (
	errNothingStaged = errors.New("nothing staged to commit")
	errEmptyMessage  = errors.New("commit message cannot be empty")
)

// loadStatus queries git status in the background and delivers the result
// together with the cursor anchoring intent.
func (m Model) loadStatus(a anchor) tea.Cmd {
	svc := m.git
	return func() tea.Msg {
		res, err := svc.Status()
		return statusLoadedMsg{res: res, anchor: a, err: err}
	}
}

// refreshStatusBar runs git queries in the background and returns a
// statusBarMsg. All queries hit the cached service, so a refresh cycle
// costs at most one subprocess per query per TTL window.
func (m Model) refreshStatusBar() tea.Cmd {
	svc := m.git
	return func() tea.Msg {
		data := components.StatusBarData{RepoRoot: svc.RepoRoot()}
		if head, err := svc.Head(); err == nil {
			data.Branch = head
		}
		data.Ahead, data.Behind, _ = svc.AheadBehind()
		data.Clean, _ = svc.IsClean()
		if res, err := svc.Status(); err == nil {
			data.Staged = len(res.Staged)
			data.Unstaged = len(res.Unstaged) + len(res.Untracked)
		}
		return statusBarMsg{data: data}
	}
}

// refreshAll reloads both the file list and the status bar.
func (m Model) refreshAll(a anchor) tea.Cmd {
	return tea.Batch(m.loadStatus(a), m.refreshStatusBar())
}

// cacheInvalidator is implemented by Service wrappers that memoise reads.
type cacheInvalidator interface{ Invalidate() }

// refreshExternal re-derives state after a change made outside this
// process: a watcher event, a manual refresh, or an interactive
// subprocess. Memoised reads are flushed first so the re-derivation
// cannot re-install a snapshot taken before the change.
func (m Model) refreshExternal(a anchor) tea.Cmd {
	if inv, ok := m.git.(cacheInvalidator); ok {
		inv.Invalidate()
	}
	return m.refreshAll(a)
}

// toggleCurrent stages or unstages the selected file. The identity of the
// entry BELOW the cursor is captured before the mutation so the cursor
// can land there afterwards, giving a forward-scanning toggle workflow.
func (m Model) toggleCurrent() tea.Cmd {
	f, ok := m.list.Current()
	if !ok {
		return nil
	}
	next := m.list.NextKey()
	svc := m.git
	return func() tea.Msg {
		var err error
		if f.Staged {
			err = svc.Unstage(f.Path)
		} else {
			err = svc.Stage(f.Path)
		}
		if err != nil {
			return errMsg{err}
		}
		res, err := svc.Status()
		return statusLoadedMsg{res: res, anchor: anchor{mode: anchorAdvance, key: next}, err: err}
	}
}

// toggleFollow stages or unstages the selected entry and keeps the
// cursor on it in its new group. Used from the diff view so the diff
// stays on the same file.
func (m Model) toggleFollow() tea.Cmd {
	f, ok := m.list.Current()
	if !ok {
		return nil
	}
	svc := m.git
	return func() tea.Msg {
		var err error
		if f.Staged {
			err = svc.Unstage(f.Path)
		} else {
			err = svc.Stage(f.Path)
		}
		if err != nil {
			return errMsg{err}
		}
		res, err := svc.Status()
		moved := git.Key{Path: f.Path, Staged: !f.Staged}
		return statusLoadedMsg{res: res, anchor: anchor{mode: anchorPreserve, key: &moved}, err: err}
	}
}

// stageAllModified stages every modified tracked file. Untracked files
// are left alone.
func (m Model) stageAllModified() tea.Cmd {
	cur := m.list.CurrentKey()
	svc := m.git
	return func() tea.Msg {
		n, err := svc.StageModified()
		if err != nil {
			return errMsg{err}
		}
		if n == 0 {
			return infoMsg{text: "no modified files to stage"}
		}
		res, err := svc.Status()
		if err != nil {
			return errMsg{err}
		}
		return tea.BatchMsg{
			func() tea.Msg {
				return statusLoadedMsg{res: res, anchor: anchor{mode: anchorPreserve, key: cur}}
			},
			func() tea.Msg { return infoMsg{text: fmt.Sprintf("staged %d file(s)", n)} },
		}
	}
}

// startPatch releases the terminal and runs `git add -p` for the selected
// file. Only meaningful for unstaged tracked changes.
func (m Model) startPatch() (tea.Model, tea.Cmd) {
	f, ok := m.list.Current()
	if !ok {
		return m, nil
	}
	if f.Staged || f.Untracked() {
		return m, func() tea.Msg {
			return errMsg{errors.New("hunk staging applies to unstaged tracked changes")}
		}
	}
	cmd := m.git.InteractiveStageCmd(f.Path)
	return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
		return execDoneMsg{err: err}
	})
}

// askDiscard opens the confirmation dialog for discarding the selected
// file's working tree changes.
func (m Model) askDiscard() (tea.Model, tea.Cmd) {
	f, ok := m.list.Current()
	if !ok {
		return m, nil
	}
	if f.Staged {
		return m, func() tea.Msg {
			return errMsg{errors.New("unstage the file before discarding")}
		}
	}
	if f.Untracked() {
		return m, func() tea.Msg {
			return errMsg{errors.New("refusing to delete untracked file")}
		}
	}
	if !m.cfg.ConfirmDiscard {
		return m, m.discardFile(f)
	}
	m.pendingDiscard = &f
	d := components.NewConfirmDialog(m.styles,
		"Discard changes",
		fmt.Sprintf("Discard working tree changes to %s? This cannot be undone.", f.Path),
		dialogTagDiscard)
	m.dialog = &d
	return m, nil
}

func (m Model) discardFile(f git.FileStatus) tea.Cmd {
	cur := m.list.CurrentKey()
	svc := m.git
	return func() tea.Msg {
		if err := svc.Discard(f.Path); err != nil {
			return errMsg{err}
		}
		res, err := svc.Status()
		return statusLoadedMsg{res: res, anchor: anchor{mode: anchorPreserve, key: cur}, err: err}
	}
}

func (m Model) doCommit(message string) tea.Cmd {
	svc := m.git
	return func() tea.Msg {
		if err := svc.Commit(message); err != nil {
			return errMsg{err}
		}
		res, err := svc.Status()
		if err != nil {
			return errMsg{err}
		}
		return tea.BatchMsg{
			func() tea.Msg { return statusLoadedMsg{res: res, anchor: anchor{mode: anchorClamp}} },
			func() tea.Msg { return infoMsg{text: "committed"} },
		}
	}
}

// loadDiffForCurrent loads the diff of the selected entry. Untracked
// files have no diff against the index, so their content is shown as a
// pseudo-diff with every line added. Read failures render inline in
// place of the content.
func (m Model) loadDiffForCurrent() tea.Cmd {
	f, ok := m.list.Current()
	if !ok {
		return nil
	}
	svc := m.git
	return func() tea.Msg {
		if f.Untracked() {
			content, err := svc.UntrackedContent(f.Path)
			if err != nil {
				return diffLoadedMsg{path: f.Path, content: "(error reading file: " + err.Error() + ")"}
			}
			return diffLoadedMsg{path: f.Path, content: untrackedAsDiff(f.Path, content)}
		}
		diff, err := svc.Diff(f.Staged, f.Path)
		if err != nil {
			return diffLoadedMsg{path: f.Path, staged: f.Staged, content: "(error loading diff: " + err.Error() + ")"}
		}
		if diff == "" {
			diff = "(no diff content — file may be binary)"
		}
		return diffLoadedMsg{path: f.Path, staged: f.Staged, content: diff}
	}
}

// untrackedAsDiff renders file content as an all-additions diff so the
// same colouring and side-by-side paths apply.
func untrackedAsDiff(path, content string) string {
	var b strings.Builder
	b.WriteString("+++ b/" + path + "\n")
	content = strings.TrimRight(content, "\n")
	if content == "" {
		return b.String()
	}
	for _, line := range strings.Split(content, "\n") {
		b.WriteString("+" + line + "\n")
	}
	return b.String()
}

// trimCommitMessage strips comment lines and surrounding whitespace from
// a commit message, mirroring git's own cleanup of '#' lines.
func trimCommitMessage(raw string) string {
	var kept []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
