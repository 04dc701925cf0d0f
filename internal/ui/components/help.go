package components

import (
	"strings"

	"github.com/Akashdeep-Patra/zed-git-stage/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// HelpEntry is a single key-description pair for the help overlay.
type HelpEntry struct {
	Key  string
	Desc string
}

// RenderHelp renders a full-screen help overlay.
func RenderHelp(styles ui.Styles, title string, sections map[string][]HelpEntry, width, height int) string {
	t := styles.Theme

	titleStr := styles.SectionHeader.
		Align(lipgloss.Center).
		Width(width - 4).
		Render(title)

	var body strings.Builder
	body.WriteString(titleStr + "\n\n")

	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Underline(true)
	keyStyle := styles.KeyBind.Width(16).Align(lipgloss.Right)
	descStyle := styles.Body

	// Deterministic order from a predefined list.
	order := []string{"Navigation", "Staging", "Commit", "Diff", "General"}
	for _, section := range order {
		entries, ok := sections[section]
		if !ok || len(entries) == 0 {
			continue
		}
		body.WriteString(sectionStyle.Render(section) + "\n")
		for _, e := range entries {
			body.WriteString("  " + keyStyle.Render(e.Key) + "  " + descStyle.Render(e.Desc) + "\n")
		}
		body.WriteString("\n")
	}

	content := body.String()

	overlay := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Primary).
		Padding(1, 3).
		Width(min(70, width-4)).
		MaxHeight(height - 2).
		Render(content)

	return ui.PlaceCentre(width, height, overlay)
}

// GlobalHelpEntries returns the help entries for all keybindings.
func GlobalHelpEntries() map[string][]HelpEntry {
	return map[string][]HelpEntry{
		"Navigation": {
			{Key: "j / ↓", Desc: "Move down"},
			{Key: "k / ↑", Desc: "Move up"},
			{Key: "g / Home", Desc: "Go to top"},
			{Key: "G / End", Desc: "Go to bottom"},
			{Key: "pgup / ctrl+u", Desc: "Page up"},
			{Key: "pgdn / ctrl+d", Desc: "Page down"},
		},
		"Staging": {
			{Key: "space", Desc: "Stage / unstage file"},
			{Key: "a", Desc: "Stage all modified files"},
			{Key: "p", Desc: "Stage hunks interactively"},
			{Key: "u", Desc: "Discard changes (confirm)"},
		},
		"Commit": {
			{Key: "c", Desc: "Commit (inline message)"},
			{Key: "e", Desc: "Commit ($EDITOR)"},
		},
		"Diff": {
			{Key: "enter / d", Desc: "View diff"},
			{Key: "v", Desc: "Toggle side-by-side"},
			{Key: "esc", Desc: "Back to file list"},
		},
		"General": {
			{Key: "r", Desc: "Refresh"},
			{Key: "?", Desc: "Toggle this help"},
			{Key: "q / ctrl+c", Desc: "Quit"},
		},
	}
}
