package app

import (
	"time"

	"github.com/Akashdeep-Patra/zed-git-stage/internal/git"
	"github.com/Akashdeep-Patra/zed-git-stage/internal/ui/components"
)

// anchorMode selects how the cursor is re-anchored when a fresh status
// result replaces the file list.
type anchorMode int

const (
	// anchorClamp keeps the old index, clamped to the new length.
	anchorClamp anchorMode = iota
	// anchorPreserve follows the entry identified by anchor.key.
	anchorPreserve
	// anchorAdvance lands on the entry that sat below the toggled one.
	anchorAdvance
	// anchorReset jumps to the top.
	anchorReset
)

// anchor carries the cursor re-anchoring intent through an async refresh.
// It is captured when the refresh command is built, BEFORE the mutation
// completes, so the identity keys refer to the pre-mutation list.
type anchor struct {
	mode anchorMode
	key  *git.Key
}

// statusLoadedMsg delivers a fresh status snapshot plus the anchoring
// intent captured when the refresh was requested.
type statusLoadedMsg struct {
	res    *git.StatusResult
	anchor anchor
	err    error
}

// statusBarMsg carries refreshed status bar data from a background command.
type statusBarMsg struct {
	data components.StatusBarData
}

// diffLoadedMsg delivers diff content for the selected file. Read
// failures arrive as error text in content, never as a separate error.
type diffLoadedMsg struct {
	path    string
	staged  bool
	content string
}

// tickMsg drives the watcher poll loop.
type tickMsg time.Time

// errMsg surfaces a failed operation as a transient status bar message.
type errMsg struct{ err error }

// infoMsg surfaces a successful operation as a transient status bar message.
type infoMsg struct{ text string }

// execDoneMsg is sent when a terminal-releasing subprocess (git add -p)
// returns control.
type execDoneMsg struct{ err error }

// editorDoneMsg is sent when the commit message editor exits; path is the
// temp file holding the message.
type editorDoneMsg struct {
	path string
	err  error
}
