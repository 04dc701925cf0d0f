package files

import "github.com/Akashdeep-Patra/zed-git-stage/internal/git"

// LineKind discriminates the rendered line types of the file list.
type LineKind int

// Line kinds.
const (
	LineHeader LineKind = iota
	LineBlank
	LineFile
)

// Line is one display line of the file list: a section header, a blank
// separator, or a file entry. Only LineFile lines carry a flat file
// index; every line remembers the display index of its section header so
// the viewport can pin headers on upward scroll.
type Line struct {
	Kind    LineKind
	Header  string // section title, set for LineHeader
	File    int    // flat index into List.Items(), -1 unless LineFile
	Section int    // display index of this line's section header
}

// Section titles, in display order. They mirror git's own status wording
// so the grouping reads the same as `git status` output.
const (
	TitleStaged    = "Changes to be committed:"
	TitleUnstaged  = "Changes not staged for commit:"
	TitleUntracked = "Untracked files:"
)

// BuildLines produces the display-line sequence for the flattened
// entries: three fixed section headers (present even when a section is
// empty, matching git's layout stability), one line per entry, and a
// blank separator between sections. File lines are numbered in the same
// flat order as the input.
func BuildLines(items []git.FileStatus) []Line {
	lines := make([]Line, 0, len(items)+8)
	next := 0

	section := func(title string, match func(git.FileStatus) bool) {
		if len(lines) > 0 {
			lines = append(lines, Line{Kind: LineBlank, File: -1, Section: len(lines) + 1})
		}
		header := len(lines)
		lines = append(lines, Line{Kind: LineHeader, Header: title, File: -1, Section: header})
		for ; next < len(items) && match(items[next]); next++ {
			lines = append(lines, Line{Kind: LineFile, File: next, Section: header})
		}
	}

	section(TitleStaged, func(f git.FileStatus) bool { return f.Staged })
	section(TitleUnstaged, func(f git.FileStatus) bool { return !f.Staged && !f.Untracked() })
	section(TitleUntracked, func(f git.FileStatus) bool { return f.Untracked() })

	return lines
}

// FileLine returns the display index of the line carrying the given flat
// file index, or -1 when absent.
func FileLine(lines []Line, file int) int {
	for i, ln := range lines {
		if ln.Kind == LineFile && ln.File == file {
			return i
		}
	}
	return -1
}

// Viewport tracks the scroll window over the file list's display lines.
type Viewport struct {
	Offset int // first visible display line
	Height int // visible rows
}

// Reconcile adjusts the offset so the cursor's display line stays on
// screen. Scrolling upward snaps to the cursor's section header rather
// than the cursor line itself. Otherwise a file could scroll into view
// without its section label and "staged or not?" becomes ambiguous.
// Downward scroll is the plain keep-in-window rule. The offset is then
// clamped to the valid range.
func (v *Viewport) Reconcile(lines []Line, cursor int) {
	if v.Height < 1 {
		v.Offset = 0
		return
	}

	cursorLine := FileLine(lines, cursor)
	if cursorLine >= 0 {
		headerLine := lines[cursorLine].Section
		if cursorLine < v.Offset {
			v.Offset = headerLine
			// A section taller than the window: snapping to its header
			// would push the cursor off the bottom edge, so keep the
			// cursor visible instead.
			if cursorLine >= v.Offset+v.Height {
				v.Offset = cursorLine - v.Height + 1
			}
		} else if cursorLine >= v.Offset+v.Height {
			v.Offset = cursorLine - v.Height + 1
		}
	}

	maxOffset := len(lines) - v.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}

// Visible returns the window [Offset, Offset+Height) of lines.
func (v *Viewport) Visible(lines []Line) []Line {
	if v.Offset >= len(lines) {
		return nil
	}
	end := v.Offset + v.Height
	if end > len(lines) {
		end = len(lines)
	}
	return lines[v.Offset:end]
}
