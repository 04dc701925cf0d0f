package components

import (
	"github.com/Akashdeep-Patra/zed-git-stage/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DialogResult is sent when the dialog is dismissed.
type DialogResult struct {
	Confirmed bool
	Tag       string // arbitrary tag to identify which dialog this was
}

// Dialog is a modal Yes/No confirmation dialog.
type Dialog struct {
	Title   string
	Message string
	Tag     string
	focused int // 0 = yes, 1 = no
	styles  ui.Styles
	visible bool
}

// NewConfirmDialog creates a Yes/No confirmation dialog. The No button
// starts focused so a reflexive enter doesn't confirm a destructive
// action.
func NewConfirmDialog(styles ui.Styles, title, message, tag string) Dialog {
	return Dialog{
		Title:   title,
		Message: message,
		Tag:     tag,
		focused: 1,
		styles:  styles,
		visible: true,
	}
}

// Visible returns whether the dialog is showing.
func (d Dialog) Visible() bool { return d.visible }

// Update handles key events for the dialog.
func (d Dialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "n", "N":
			d.visible = false
			return d, func() tea.Msg { return DialogResult{Tag: d.Tag} }

		case "y", "Y":
			d.visible = false
			return d, func() tea.Msg { return DialogResult{Confirmed: true, Tag: d.Tag} }

		case "enter":
			d.visible = false
			return d, func() tea.Msg {
				return DialogResult{Confirmed: d.focused == 0, Tag: d.Tag}
			}

		case "tab", "left", "right", "h", "l":
			d.focused = 1 - d.focused
		}
	}
	return d, nil
}

// View renders the dialog.
func (d Dialog) View() string {
	if !d.visible {
		return ""
	}
	t := d.styles.Theme

	title := d.styles.DialogTitle.Render(d.Title)
	message := d.styles.Muted.Render(d.Message)

	activeBtn := d.styles.DialogButton
	inactiveBtn := d.styles.DialogButton.Foreground(t.TextMuted).Background(t.Surface).Bold(false)
	yes, no := "Yes", "No"
	if d.focused == 0 {
		yes = activeBtn.Render(yes)
		no = inactiveBtn.Render(no)
	} else {
		yes = inactiveBtn.Render(yes)
		no = activeBtn.Render(no)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, yes, "  ", no)
	content := title + "\n\n" + message + "\n\n" + buttons

	return d.styles.Dialog.Render(content)
}
