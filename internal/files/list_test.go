package files

import (
	"testing"

	"github.com/Akashdeep-Patra/zed-git-stage/internal/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staged(path string) git.FileStatus {
	return git.FileStatus{Code: git.StatusModified, Path: path, Staged: true}
}

func unstaged(path string) git.FileStatus {
	return git.FileStatus{Code: git.StatusModified, Path: path}
}

func untracked(path string) git.FileStatus {
	return git.FileStatus{Code: git.StatusUntracked, Path: path}
}

func result(st, un, ut []git.FileStatus) *git.StatusResult {
	return &git.StatusResult{Staged: st, Unstaged: un, Untracked: ut}
}

func TestReplaceFlattensInDisplayOrder(t *testing.T) {
	l := NewList()
	l.Replace(result(
		[]git.FileStatus{staged("a.go")},
		[]git.FileStatus{unstaged("b.go")},
		[]git.FileStatus{untracked("c.txt")},
	))

	require.Equal(t, 3, l.Len())
	assert.Equal(t, "a.go", l.Items()[0].Path)
	assert.True(t, l.Items()[0].Staged)
	assert.Equal(t, "b.go", l.Items()[1].Path)
	assert.Equal(t, "c.txt", l.Items()[2].Path)
}

func TestReplaceClampsCursor(t *testing.T) {
	l := NewList()
	l.Replace(result(nil, []git.FileStatus{unstaged("a"), unstaged("b"), unstaged("c")}, nil))
	l.Bottom()
	require.Equal(t, 2, l.Cursor())

	l.Replace(result(nil, []git.FileStatus{unstaged("a")}, nil))
	assert.Equal(t, 0, l.Cursor())

	l.Replace(result(nil, nil, nil))
	assert.Equal(t, 0, l.Cursor())
	_, ok := l.Current()
	assert.False(t, ok)
}

func TestReplaceIsIdempotent(t *testing.T) {
	res := result(
		[]git.FileStatus{staged("a.go")},
		[]git.FileStatus{unstaged("b.go"), unstaged("c.go")},
		nil,
	)

	l := NewList()
	l.Replace(res)
	l.MoveDown()
	cursor := l.Cursor()
	key := l.CurrentKey()

	l.ReplaceAnchored(res, key)
	assert.Equal(t, cursor, l.Cursor())
	assert.Equal(t, *key, *l.CurrentKey())
}

func TestReplaceAnchoredFollowsEntryAcrossIndexShift(t *testing.T) {
	l := NewList()
	l.Replace(result(
		nil,
		[]git.FileStatus{unstaged("a.go"), unstaged("b.go")},
		nil,
	))
	l.MoveDown() // cursor on b.go
	key := l.CurrentKey()
	require.Equal(t, git.Key{Path: "b.go"}, *key)

	// A refresh adds staged entries above; b.go's flat index shifts.
	l.ReplaceAnchored(result(
		[]git.FileStatus{staged("x.go"), staged("y.go")},
		[]git.FileStatus{unstaged("a.go"), unstaged("b.go")},
		nil,
	), key)

	cur, ok := l.Current()
	require.True(t, ok)
	assert.Equal(t, "b.go", cur.Path)
	assert.False(t, cur.Staged)
	assert.Equal(t, 3, l.Cursor())
}

func TestReplaceAnchoredMissingKeyClampsInstead(t *testing.T) {
	l := NewList()
	l.Replace(result(nil, []git.FileStatus{unstaged("a"), unstaged("b")}, nil))
	l.Bottom()
	key := &git.Key{Path: "gone.go"}

	l.ReplaceAnchored(result(nil, []git.FileStatus{unstaged("a")}, nil), key)
	assert.Equal(t, 0, l.Cursor())
}

func TestReplaceAdvanceLandsOnEntryBelowToggled(t *testing.T) {
	l := NewList()
	l.Replace(result(
		nil,
		[]git.FileStatus{unstaged("a.go"), unstaged("b.go"), unstaged("c.go")},
		nil,
	))
	require.Equal(t, 0, l.Cursor())

	// Staging a.go: capture the entry below before the mutation.
	next := l.NextKey()
	require.Equal(t, git.Key{Path: "b.go"}, *next)

	l.ReplaceAdvance(result(
		[]git.FileStatus{staged("a.go")},
		[]git.FileStatus{unstaged("b.go"), unstaged("c.go")},
		nil,
	), next)

	cur, ok := l.Current()
	require.True(t, ok)
	assert.Equal(t, "b.go", cur.Path)
	assert.False(t, cur.Staged)
}

func TestReplaceAdvanceLastEntryClampsToEnd(t *testing.T) {
	l := NewList()
	l.Replace(result(nil, []git.FileStatus{unstaged("a.go"), unstaged("b.go")}, nil))
	l.Bottom()
	require.Nil(t, l.NextKey())

	l.ReplaceAdvance(result(
		[]git.FileStatus{staged("b.go")},
		[]git.FileStatus{unstaged("a.go")},
		nil,
	), nil)

	assert.Equal(t, 1, l.Cursor())
}

func TestPartialStageProducesTwoDistinctEntries(t *testing.T) {
	l := NewList()
	l.Replace(result(
		[]git.FileStatus{staged("a.go")},
		[]git.FileStatus{unstaged("a.go")},
		nil,
	))

	require.Equal(t, 2, l.Len())
	assert.NotEqual(t, l.Items()[0].Key(), l.Items()[1].Key())

	// Anchoring on the unstaged half must not jump to the staged half.
	key := &git.Key{Path: "a.go", Staged: false}
	l.ReplaceAnchored(result(
		[]git.FileStatus{staged("a.go"), staged("new.go")},
		[]git.FileStatus{unstaged("a.go")},
		nil,
	), key)

	cur, ok := l.Current()
	require.True(t, ok)
	assert.Equal(t, "a.go", cur.Path)
	assert.False(t, cur.Staged)
}

func TestMovementBounds(t *testing.T) {
	l := NewList()
	l.Replace(result(nil, []git.FileStatus{unstaged("a"), unstaged("b"), unstaged("c")}, nil))

	l.MoveUp()
	assert.Equal(t, 0, l.Cursor())

	l.Bottom()
	l.MoveDown()
	assert.Equal(t, 2, l.Cursor())

	l.PageUp(10)
	assert.Equal(t, 0, l.Cursor())

	l.PageDown(10)
	assert.Equal(t, 2, l.Cursor())

	l.Top()
	assert.Equal(t, 0, l.Cursor())
}

func TestMovementOnEmptyList(t *testing.T) {
	l := NewList()
	l.MoveDown()
	l.MoveUp()
	l.Bottom()
	l.PageDown(5)
	assert.Equal(t, 0, l.Cursor())
	assert.Nil(t, l.CurrentKey())
	assert.Nil(t, l.NextKey())
}
