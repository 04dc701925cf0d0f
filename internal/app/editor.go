package app

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// editorCommand resolves the editor to use for commit messages: config
// first, then $EDITOR, then vi.
func (m Model) editorCommand() string {
	if m.cfg.Editor != "" {
		return m.cfg.Editor
	}
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	return "vi"
}

// startEditorCommit writes a commit message template to a temp file,
// releases the terminal, and opens the editor on it.
func (m Model) startEditorCommit() (tea.Model, tea.Cmd) {
	if m.barData.Staged == 0 {
		return m, func() tea.Msg { return errMsg{errNothingStaged} }
	}

	tmp, err := os.CreateTemp("", "zgs-commit-*.txt")
	if err != nil {
		return m, func() tea.Msg { return errMsg{err} }
	}
	if _, err := tmp.WriteString(m.commitTemplate()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return m, func() tea.Msg { return errMsg{err} }
	}
	tmp.Close()

	path := tmp.Name()
	cmd := exec.Command(m.editorCommand(), path)
	return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorDoneMsg{path: path, err: err}
	})
}

// commitTemplate mirrors git's COMMIT_EDITMSG template: a blank line for
// the message followed by commented context.
func (m Model) commitTemplate() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("# Please enter the commit message for your changes. Lines starting\n")
	b.WriteString("# with '#' will be ignored, and an empty message aborts the commit.\n")
	if m.barData.Branch != "" {
		fmt.Fprintf(&b, "#\n# On branch %s\n", m.barData.Branch)
	}
	staged := 0
	b.WriteString("#\n# Changes to be committed:\n")
	for _, f := range m.list.Items() {
		if !f.Staged {
			continue
		}
		fmt.Fprintf(&b, "#\t%s:   %s\n", f.Code.Label(), f.Path)
		staged++
	}
	if staged == 0 {
		b.WriteString("#\t(none)\n")
	}
	return b.String()
}

// finishEditorCommit reads the message back after the editor exits,
// strips comments, and commits. An empty message aborts, matching git.
func (m Model) finishEditorCommit(msg editorDoneMsg) tea.Cmd {
	defer os.Remove(msg.path)

	if msg.err != nil {
		return func() tea.Msg { return errMsg{msg.err} }
	}
	raw, err := os.ReadFile(msg.path)
	if err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	message := trimCommitMessage(string(raw))
	if message == "" {
		return func() tea.Msg {
			return infoMsg{text: "aborting commit due to empty commit message"}
		}
	}
	return m.doCommit(message)
}
