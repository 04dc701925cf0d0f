package files

import (
	"testing"

	"github.com/Akashdeep-Patra/zed-git-stage/internal/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildItems(st, un, ut int) []git.FileStatus {
	var items []git.FileStatus
	for i := 0; i < st; i++ {
		items = append(items, git.FileStatus{Code: git.StatusModified, Path: pathN("s", i), Staged: true})
	}
	for i := 0; i < un; i++ {
		items = append(items, git.FileStatus{Code: git.StatusModified, Path: pathN("u", i)})
	}
	for i := 0; i < ut; i++ {
		items = append(items, git.FileStatus{Code: git.StatusUntracked, Path: pathN("t", i)})
	}
	return items
}

func pathN(prefix string, i int) string {
	return prefix + string(rune('0'+i)) + ".go"
}

func TestBuildLinesEmptyStillShowsAllHeaders(t *testing.T) {
	lines := BuildLines(nil)

	require.Len(t, lines, 5)
	assert.Equal(t, LineHeader, lines[0].Kind)
	assert.Equal(t, TitleStaged, lines[0].Header)
	assert.Equal(t, LineBlank, lines[1].Kind)
	assert.Equal(t, LineHeader, lines[2].Kind)
	assert.Equal(t, TitleUnstaged, lines[2].Header)
	assert.Equal(t, LineBlank, lines[3].Kind)
	assert.Equal(t, LineHeader, lines[4].Kind)
	assert.Equal(t, TitleUntracked, lines[4].Header)
}

func TestBuildLinesNumbersFilesInFlatOrder(t *testing.T) {
	items := buildItems(2, 1, 1)
	lines := BuildLines(items)

	var fileIndices []int
	for _, ln := range lines {
		if ln.Kind == LineFile {
			fileIndices = append(fileIndices, ln.File)
		}
	}
	assert.Equal(t, []int{0, 1, 2, 3}, fileIndices)
}

func TestBuildLinesSectionPointsAtOwnHeader(t *testing.T) {
	items := buildItems(1, 2, 0)
	lines := BuildLines(items)

	// Layout: 0 hdr, 1 s0, 2 blank, 3 hdr, 4 u0, 5 u1, 6 blank, 7 hdr.
	require.Len(t, lines, 8)
	assert.Equal(t, 0, lines[1].Section)
	assert.Equal(t, 3, lines[4].Section)
	assert.Equal(t, 3, lines[5].Section)

	for i, ln := range lines {
		if ln.Kind == LineHeader {
			assert.Equal(t, i, ln.Section)
		}
	}
}

func TestFileLine(t *testing.T) {
	lines := BuildLines(buildItems(1, 1, 0))

	assert.Equal(t, 1, FileLine(lines, 0))
	assert.Equal(t, 4, FileLine(lines, 1))
	assert.Equal(t, -1, FileLine(lines, 99))
}

func TestReconcileUpwardSnapsToSectionHeader(t *testing.T) {
	// 0 hdr-staged, 1-3 s files, 4 blank, 5 hdr-unstaged, 6-8 u files, ...
	lines := BuildLines(buildItems(3, 3, 0))
	v := Viewport{Offset: 7, Height: 4}

	// Cursor moves to unstaged file u0 (flat 3, display line 6), above the
	// window. The offset must snap to the section header (line 5), not the
	// cursor line.
	v.Reconcile(lines, 3)
	assert.Equal(t, 5, v.Offset)
}

func TestReconcileUpwardInOversizedSectionKeepsCursorVisible(t *testing.T) {
	// One section far taller than the window. Layout: 0 hdr-staged,
	// 1 blank, 2 hdr-unstaged, 3-32 u files, 33 blank, 34 hdr-untracked.
	lines := BuildLines(buildItems(0, 30, 0))
	v := Viewport{Offset: 28, Height: 4}

	// Cursor jumps up to flat 20 (display line 23). Snapping to the
	// header (line 2) would leave the cursor 21 lines below the window,
	// so the plain keep-in-window rule applies instead.
	v.Reconcile(lines, 20)
	assert.Equal(t, 20, v.Offset) // 23 - 4 + 1
	assert.GreaterOrEqual(t, 23, v.Offset)
	assert.Less(t, 23, v.Offset+v.Height)
}

func TestReconcileDownwardKeepsCursorAtBottom(t *testing.T) {
	lines := BuildLines(buildItems(3, 3, 0))
	v := Viewport{Offset: 0, Height: 4}

	// Cursor on flat 3 = display line 6, below window [0,4).
	v.Reconcile(lines, 3)
	assert.Equal(t, 3, v.Offset) // 6 - 4 + 1
}

func TestReconcileCursorInsideWindowDoesNothing(t *testing.T) {
	lines := BuildLines(buildItems(3, 0, 0))
	v := Viewport{Offset: 0, Height: 5}

	v.Reconcile(lines, 1)
	assert.Equal(t, 0, v.Offset)
}

func TestReconcileClampsOffset(t *testing.T) {
	lines := BuildLines(buildItems(1, 0, 0))
	v := Viewport{Offset: 40, Height: 3}

	v.Reconcile(lines, 0)
	assert.LessOrEqual(t, v.Offset, len(lines)-3)
	assert.GreaterOrEqual(t, v.Offset, 0)
}

func TestReconcileTallWindowPinsToTop(t *testing.T) {
	lines := BuildLines(buildItems(1, 1, 1))
	v := Viewport{Offset: 3, Height: 50}

	v.Reconcile(lines, 2)
	assert.Equal(t, 0, v.Offset)
}

func TestVisibleWindow(t *testing.T) {
	lines := BuildLines(buildItems(2, 2, 0))
	v := Viewport{Offset: 2, Height: 3}

	vis := v.Visible(lines)
	require.Len(t, vis, 3)
	assert.Equal(t, lines[2], vis[0])

	v.Offset = len(lines) + 5
	assert.Nil(t, v.Visible(lines))
}
