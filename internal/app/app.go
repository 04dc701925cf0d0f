// Package app contains the top-level Bubbletea model for the staging UI.
package app

import (
	"time"

	"github.com/Akashdeep-Patra/zed-git-stage/internal/config"
	"github.com/Akashdeep-Patra/zed-git-stage/internal/files"
	"github.com/Akashdeep-Patra/zed-git-stage/internal/git"
	"github.com/Akashdeep-Patra/zed-git-stage/internal/ui"
	"github.com/Akashdeep-Patra/zed-git-stage/internal/ui/components"
	"github.com/Akashdeep-Patra/zed-git-stage/internal/watcher"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// mode is the current interaction mode of the UI.
type mode int

const (
	modeList mode = iota
	modeDiff
	modeCommit
)

// watchTick is how often the watcher's event channel is polled. The poll
// is non-blocking, so this only bounds refresh latency, not CPU.
const watchTick = 100 * time.Millisecond

// Model is the top-level Bubbletea model.
type Model struct {
	git    git.Service
	cfg    *config.Config
	styles ui.Styles
	keys   KeyMap
	width  int
	height int

	mode mode

	// File list state: flat entries, display lines, scroll window.
	list  *files.List
	lines []files.Line
	vp    files.Viewport

	// Diff mode.
	diffVP      viewport.Model
	diffContent string
	diffPath    string
	diffStaged  bool
	sideBySide  bool

	// Commit mode.
	commitTA textarea.Model

	dialog         *components.Dialog
	pendingDiscard *git.FileStatus

	showHelp  bool
	statusMsg string
	statusErr bool
	statusExp time.Time
	barData   components.StatusBarData

	watch    *watcher.Watcher
	debounce *watcher.Debouncer
}

// New creates the application model. w may be nil when the watcher could
// not be started; the UI then refreshes only on keypress.
func New(gitSvc git.Service, cfg *config.Config, w *watcher.Watcher) Model {
	ta := textarea.New()
	ta.Placeholder = "Commit message..."
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(3)

	return Model{
		git:        gitSvc,
		cfg:        cfg,
		styles:     ui.NewStyles(ui.ThemeByName(cfg.Theme)),
		keys:       DefaultKeyMap(),
		list:       files.NewList(),
		diffVP:     viewport.New(0, 0),
		sideBySide: cfg.SideBySideDiff,
		commitTA:   ta,
		barData:    components.StatusBarData{RepoRoot: gitSvc.RepoRoot()},
		watch:      w,
		debounce:   watcher.NewDebouncer(cfg.Cooldown()),
	}
}

// Init loads the initial status and starts the watcher poll loop.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.loadStatus(anchor{mode: anchorReset}),
		m.refreshStatusBar(),
	}
	if m.watch != nil {
		cmds = append(cmds, tick())
	}
	return tea.Batch(cmds...)
}

func tick() tea.Cmd {
	return tea.Tick(watchTick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update processes messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Dialog has exclusive input when visible.
	if m.dialog != nil && m.dialog.Visible() {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			d, cmd := m.dialog.Update(msg)
			m.dialog = &d
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Height = m.contentHeight()
		m.diffVP.Width = m.width
		m.diffVP.Height = m.contentHeight()
		m.commitTA.SetWidth(m.width - 6)
		m.vp.Reconcile(m.lines, m.list.Cursor())
		return m, nil

	case tickMsg:
		saw := false
		if m.watch != nil {
			saw = m.watch.Drain()
		}
		if m.debounce.Check(time.Time(msg), saw) {
			cmds = append(cmds, m.refreshExternal(anchor{mode: anchorPreserve, key: m.list.CurrentKey()}))
		}
		cmds = append(cmds, tick())
		return m, tea.Batch(cmds...)

	case statusLoadedMsg:
		if msg.err != nil {
			return m.withError(msg.err), nil
		}
		m.applyStatus(msg.res, msg.anchor)
		if m.mode == modeDiff {
			// Keep the diff in sync with whatever the cursor landed on.
			if cmd := m.loadDiffForCurrent(); cmd != nil {
				cmds = append(cmds, cmd)
			} else {
				m.mode = modeList
			}
		}
		return m, tea.Batch(cmds...)

	case statusBarMsg:
		m.barData = msg.data
		return m, nil

	case diffLoadedMsg:
		m.diffPath = msg.path
		m.diffStaged = msg.staged
		m.diffContent = msg.content
		m.setDiffViewContent()
		m.diffVP.GotoTop()
		m.mode = modeDiff
		return m, nil

	case errMsg:
		return m.withError(msg.err), nil

	case infoMsg:
		m.statusMsg = msg.text
		m.statusErr = false
		m.statusExp = time.Now().Add(3 * time.Second)
		return m, nil

	case execDoneMsg:
		if msg.err != nil {
			return m.withError(msg.err), m.refreshExternal(anchor{mode: anchorPreserve, key: m.list.CurrentKey()})
		}
		return m, m.refreshExternal(anchor{mode: anchorPreserve, key: m.list.CurrentKey()})

	case editorDoneMsg:
		return m, m.finishEditorCommit(msg)

	case components.DialogResult:
		m.dialog = nil
		if msg.Tag == dialogTagDiscard && msg.Confirmed && m.pendingDiscard != nil {
			f := *m.pendingDiscard
			m.pendingDiscard = nil
			return m, m.discardFile(f)
		}
		m.pendingDiscard = nil
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeCommit:
			return m.updateCommit(msg)
		case modeDiff:
			return m.updateDiff(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, tea.Batch(cmds...)
}

// applyStatus installs a fresh status result into the list using the
// anchoring intent, then rebuilds display lines and reconciles the
// scroll window.
func (m *Model) applyStatus(res *git.StatusResult, a anchor) {
	switch a.mode {
	case anchorPreserve:
		m.list.ReplaceAnchored(res, a.key)
	case anchorAdvance:
		m.list.ReplaceAdvance(res, a.key)
	case anchorReset:
		m.list.Reset(res)
	default:
		m.list.Replace(res)
	}
	m.lines = files.BuildLines(m.list.Items())
	m.vp.Height = m.contentHeight()
	m.vp.Reconcile(m.lines, m.list.Cursor())

	m.barData.Staged = len(res.Staged)
	m.barData.Unstaged = len(res.Unstaged) + len(res.Untracked)
	m.barData.Clean = res.TotalCount() == 0
}

func (m Model) withError(err error) Model {
	m.statusMsg = err.Error()
	m.statusErr = true
	m.statusExp = time.Now().Add(5 * time.Second)
	return m
}

// contentHeight is the height of the main content area: everything but
// the hint bar and the status bar.
func (m Model) contentHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

// ── Key handlers ────────────────────────────────────────────────────────────

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.showHelp {
			m.showHelp = false
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshExternal(anchor{mode: anchorPreserve, key: m.list.CurrentKey()})

	case key.Matches(msg, m.keys.Down):
		m.list.MoveDown()
		m.vp.Reconcile(m.lines, m.list.Cursor())
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.list.MoveUp()
		m.vp.Reconcile(m.lines, m.list.Cursor())
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.list.PageDown(m.pageSize())
		m.vp.Reconcile(m.lines, m.list.Cursor())
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.list.PageUp(m.pageSize())
		m.vp.Reconcile(m.lines, m.list.Cursor())
		return m, nil

	case key.Matches(msg, m.keys.Home):
		m.list.Top()
		m.vp.Reconcile(m.lines, m.list.Cursor())
		return m, nil

	case key.Matches(msg, m.keys.End):
		m.list.Bottom()
		m.vp.Reconcile(m.lines, m.list.Cursor())
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggleCurrent()

	case key.Matches(msg, m.keys.StageAll):
		return m, m.stageAllModified()

	case key.Matches(msg, m.keys.Patch):
		return m.startPatch()

	case key.Matches(msg, m.keys.Discard):
		return m.askDiscard()

	case key.Matches(msg, m.keys.Commit):
		if m.barData.Staged == 0 {
			return m, func() tea.Msg { return errMsg{errNothingStaged} }
		}
		m.mode = modeCommit
		m.commitTA.Reset()
		return m, m.commitTA.Focus()

	case key.Matches(msg, m.keys.CommitEditor):
		return m.startEditorCommit()

	case key.Matches(msg, m.keys.Diff), key.Matches(msg, m.keys.Enter):
		if cmd := m.loadDiffForCurrent(); cmd != nil {
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.SideBySide):
		m.sideBySide = !m.sideBySide
		return m, nil
	}
	return m, nil
}

func (m Model) updateDiff(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		m.mode = modeList
		m.diffContent = ""
		m.diffPath = ""
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.diffVP.ScrollDown(1)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.diffVP.ScrollUp(1)
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.diffVP.HalfPageDown()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.diffVP.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keys.Home):
		m.diffVP.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.End):
		m.diffVP.GotoBottom()
		return m, nil

	case key.Matches(msg, m.keys.SideBySide):
		m.sideBySide = !m.sideBySide
		m.setDiffViewContent()
		m.diffVP.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		// Toggling from the diff follows the entry into its new group,
		// then the refresh handler reloads the diff for it.
		return m, m.toggleFollow()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}
	return m, nil
}

func (m Model) updateCommit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = modeList
		m.commitTA.Blur()
		return m, nil
	case "ctrl+s":
		message := trimCommitMessage(m.commitTA.Value())
		if message == "" {
			return m, func() tea.Msg { return errMsg{errEmptyMessage} }
		}
		m.mode = modeList
		m.commitTA.Blur()
		return m, m.doCommit(message)
	}
	var cmd tea.Cmd
	m.commitTA, cmd = m.commitTA.Update(msg)
	return m, cmd
}

func (m Model) pageSize() int {
	ps := m.vp.Height - 2
	if ps < 1 {
		ps = 1
	}
	return ps
}
