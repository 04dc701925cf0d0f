package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/Akashdeep-Patra/zed-git-stage/internal/files"
	"github.com/Akashdeep-Patra/zed-git-stage/internal/git"
	"github.com/Akashdeep-Patra/zed-git-stage/internal/ui"
	"github.com/Akashdeep-Patra/zed-git-stage/internal/ui/components"
	"github.com/charmbracelet/lipgloss"
)

// View renders the entire UI. This is a pure function, no I/O.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showHelp {
		return components.RenderHelp(m.styles, "Keyboard Shortcuts", components.GlobalHelpEntries(), m.width, m.height)
	}

	var content string
	switch m.mode {
	case modeDiff:
		content = m.renderDiff()
	case modeCommit:
		content = m.renderCommit()
	default:
		content = m.renderList()
	}

	contentH := m.contentHeight()
	content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(content)

	hintBar := m.renderHintBar()

	barData := m.barData
	if m.statusMsg != "" && time.Now().Before(m.statusExp) {
		barData.Message = m.statusMsg
		barData.IsError = m.statusErr
	}
	statusBar := components.RenderStatusBar(m.styles, barData, m.width)

	screen := lipgloss.JoinVertical(lipgloss.Left, content, hintBar, statusBar)

	if m.dialog != nil && m.dialog.Visible() {
		screen = ui.PlaceCentre(m.width, m.height, m.dialog.View())
	}

	return screen
}

// ── File list ───────────────────────────────────────────────────────────────

func (m Model) renderList() string {
	if m.list.Len() == 0 {
		return lipgloss.NewStyle().
			Foreground(m.styles.Theme.Success).
			Width(m.width).
			Height(m.contentHeight()).
			Align(lipgloss.Center, lipgloss.Center).
			Render("✓ Working tree clean")
	}

	var b strings.Builder
	for i, ln := range m.vp.Visible(m.lines) {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch ln.Kind {
		case files.LineHeader:
			b.WriteString(m.styles.SectionHeader.Render(ln.Header))
		case files.LineFile:
			f := m.list.Items()[ln.File]
			b.WriteString(m.renderFileLine(f, ln.File == m.list.Cursor()))
		}
	}
	return b.String()
}

// renderFileLine renders one file entry in git-status style:
//
//	>   modified:   internal/app/render.go
//	    new file:   cmd/main.go
//	    unreadable.txt                        (untracked: bare path)
func (m Model) renderFileLine(f git.FileStatus, selected bool) string {
	path := f.Path
	if f.OrigPath != "" {
		path = f.OrigPath + " -> " + f.Path
	}
	maxPath := m.width - 20
	if maxPath < 10 {
		maxPath = 10
	}
	path = ui.Truncate(path, maxPath)

	var text string
	if f.Untracked() {
		text = path
	} else {
		text = fmt.Sprintf("%-12s%s", f.Code.Label()+":", path)
	}

	style := m.fileStyle(f)
	marker := "    "
	if selected {
		marker = "  > "
		style = style.Inherit(m.styles.ListSelected)
	}

	return marker + style.Render(text)
}

func (m Model) fileStyle(f git.FileStatus) lipgloss.Style {
	s := m.styles
	switch f.Code {
	case git.StatusAdded:
		return s.FileAdded
	case git.StatusDeleted:
		return s.FileDeleted
	case git.StatusRenamed, git.StatusCopied:
		return s.FileRenamed
	case git.StatusUnmerged:
		return s.FileConflict
	case git.StatusUntracked:
		return s.FileUntracked
	default:
		if f.Staged {
			return s.FileAdded
		}
		return s.FileModified
	}
}

// ── Diff ────────────────────────────────────────────────────────────────────

// setDiffViewContent re-renders the raw diff into the viewport, honouring
// the side-by-side toggle.
func (m *Model) setDiffViewContent() {
	if m.sideBySide {
		m.diffVP.SetContent(components.RenderSideBySideDiff(m.styles, m.diffContent, m.width))
		return
	}
	m.diffVP.SetContent(renderDiffColored(m.styles, m.diffContent))
}

func (m Model) renderDiff() string {
	t := m.styles.Theme

	title := m.styles.Title.Render(" " + m.diffPath)
	if m.diffStaged {
		title += m.styles.Muted.Render(" (staged)")
	}

	scrollInfo := ""
	if m.diffVP.TotalLineCount() > m.diffVP.Height {
		pct := m.diffVP.ScrollPercent() * 100
		scrollInfo = lipgloss.NewStyle().Foreground(t.TextSubtle).Render(fmt.Sprintf("%.0f%% ", pct))
	}

	titleBar := ui.PadRight(title, m.width-lipgloss.Width(scrollInfo)) + scrollInfo

	return lipgloss.JoinVertical(lipgloss.Left, titleBar, m.diffVP.View())
}

func renderDiffColored(styles ui.Styles, diff string) string {
	if diff == "" {
		return styles.Muted.Render("No diff content")
	}
	var b strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			b.WriteString(styles.DiffHeader.Render(line))
		case strings.HasPrefix(line, "@@"):
			b.WriteString(styles.DiffHunkHeader.Render(line))
		case strings.HasPrefix(line, "+"):
			b.WriteString(styles.DiffAdded.Render(line))
		case strings.HasPrefix(line, "-"):
			b.WriteString(styles.DiffRemoved.Render(line))
		case strings.HasPrefix(line, "diff "):
			b.WriteString(styles.DiffHeader.Render(line))
		case strings.HasPrefix(line, "index "):
			b.WriteString(styles.Muted.Render(line))
		default:
			b.WriteString(styles.DiffContext.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ── Commit mode ─────────────────────────────────────────────────────────────

func (m Model) renderCommit() string {
	title := m.styles.Title.Render(" Commit")
	info := m.styles.Muted.Render(fmt.Sprintf(" %d file(s) staged", m.barData.Staged))
	ta := " " + m.commitTA.View()
	return lipgloss.JoinVertical(lipgloss.Left, title, "", info, "", ta)
}

// ── Hint bar ────────────────────────────────────────────────────────────────

func (m Model) renderHintBar() string {
	sep := lipgloss.NewStyle().Foreground(m.styles.Theme.Border).Render(" │ ")

	var entries []string
	switch m.mode {
	case modeDiff:
		entries = []string{
			ui.RenderKeyValue(m.styles, "j/k", "scroll"),
			ui.RenderKeyValue(m.styles, "space", "toggle stage"),
			ui.RenderKeyValue(m.styles, "v", "side-by-side"),
			ui.RenderKeyValue(m.styles, "esc", "back"),
		}
	case modeCommit:
		entries = []string{
			ui.RenderKeyValue(m.styles, "ctrl+s", "commit"),
			ui.RenderKeyValue(m.styles, "esc", "cancel"),
		}
	default:
		entries = []string{
			ui.RenderKeyValue(m.styles, "space", "stage/unstage"),
			ui.RenderKeyValue(m.styles, "a", "stage all"),
			ui.RenderKeyValue(m.styles, "c", "commit"),
			ui.RenderKeyValue(m.styles, "d", "diff"),
			ui.RenderKeyValue(m.styles, "?", "help"),
		}
	}

	line := " " + strings.Join(entries, sep)

	posInfo := ""
	if m.mode == modeList && m.list.Len() > 0 {
		posInfo = m.styles.KeyDesc.Render(fmt.Sprintf("%d/%d ", m.list.Cursor()+1, m.list.Len()))
	}

	return m.styles.HelpBar.Width(m.width).Render(ui.PadRight(line, m.width-lipgloss.Width(posInfo)) + posInfo)
}
