// Package files owns the grouped file list shown in the staging view: a
// single flat sequence of status entries in display order (staged →
// unstaged → untracked) plus one cursor into that sequence.
//
// The flat index space is the load-bearing design choice. Staging a file
// moves it between groups, which changes its flattened position; because
// there is exactly one sequence and one cursor, re-anchoring the cursor
// after a refresh is a plain scan for an identity key instead of a
// per-group index translation.
package files

import "github.com/Akashdeep-Patra/zed-git-stage/internal/git"

// List holds the flattened, group-ordered status entries and the cursor.
// It is replaced wholesale on every refresh; nothing mutates the entries
// in place.
type List struct {
	items  []git.FileStatus
	cursor int
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

// flatten concatenates the three status groups in display order. This
// flattened order is the canonical index space for the cursor.
func flatten(res *git.StatusResult) []git.FileStatus {
	items := make([]git.FileStatus, 0, res.TotalCount())
	items = append(items, res.Staged...)
	items = append(items, res.Unstaged...)
	items = append(items, res.Untracked...)
	return items
}

// clampCursor keeps the invariant 0 <= cursor < len(items) (cursor is 0
// when the list is empty).
func (l *List) clampCursor() {
	if l.cursor >= len(l.items) {
		l.cursor = len(l.items) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// Replace installs a fresh status result, clamping the cursor to the new
// length. The previously selected entry is not tracked; use
// ReplaceAnchored to follow a specific entry across the refresh.
func (l *List) Replace(res *git.StatusResult) {
	l.items = flatten(res)
	l.clampCursor()
}

// ReplaceAnchored installs a fresh status result and re-anchors the
// cursor on the first entry whose identity equals key. If key is nil or
// no longer present (the file was committed, discarded, or merged away)
// the cursor is clamped to its old position instead.
func (l *List) ReplaceAnchored(res *git.StatusResult, key *git.Key) {
	l.items = flatten(res)
	if key != nil {
		for i, f := range l.items {
			if f.Key() == *key {
				l.cursor = i
				return
			}
		}
	}
	l.clampCursor()
}

// ReplaceAdvance installs a fresh status result after a stage/unstage
// toggle. next is the identity of the entry that sat directly below the
// toggled one BEFORE the mutation; landing on it afterwards gives the
// "toggle, toggle, toggle" forward-scanning workflow without re-aiming
// the cursor. If next is nil or gone (the toggled entry was last), the
// cursor clamps to the new last index.
func (l *List) ReplaceAdvance(res *git.StatusResult, next *git.Key) {
	l.ReplaceAnchored(res, next)
}

// Reset installs a fresh status result and moves the cursor to the top.
func (l *List) Reset(res *git.StatusResult) {
	l.items = flatten(res)
	l.cursor = 0
}

// Items returns the flattened entries. Callers must not mutate the slice.
func (l *List) Items() []git.FileStatus { return l.items }

// Len returns the number of entries.
func (l *List) Len() int { return len(l.items) }

// Cursor returns the cursor index. Meaningless when the list is empty.
func (l *List) Cursor() int { return l.cursor }

// Current returns the selected entry, or false when the list is empty.
func (l *List) Current() (git.FileStatus, bool) {
	if len(l.items) == 0 {
		return git.FileStatus{}, false
	}
	return l.items[l.cursor], true
}

// CurrentKey returns the identity key of the selected entry, or nil when
// the list is empty.
func (l *List) CurrentKey() *git.Key {
	f, ok := l.Current()
	if !ok {
		return nil
	}
	k := f.Key()
	return &k
}

// NextKey returns the identity key of the entry directly below the
// cursor, or nil if the cursor is on the last entry.
func (l *List) NextKey() *git.Key {
	if l.cursor+1 >= len(l.items) {
		return nil
	}
	k := l.items[l.cursor+1].Key()
	return &k
}

// ── Cursor movement ─────────────────────────────────────────────────────────

// MoveUp moves the cursor one entry up.
func (l *List) MoveUp() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// MoveDown moves the cursor one entry down.
func (l *List) MoveDown() {
	if l.cursor < len(l.items)-1 {
		l.cursor++
	}
}

// PageUp moves the cursor up by page entries, stopping at the top.
func (l *List) PageUp(page int) {
	l.cursor -= page
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// PageDown moves the cursor down by page entries, stopping at the bottom.
func (l *List) PageDown(page int) {
	l.cursor += page
	l.clampCursor()
}

// Top moves the cursor to the first entry.
func (l *List) Top() { l.cursor = 0 }

// Bottom moves the cursor to the last entry.
func (l *List) Bottom() {
	l.cursor = len(l.items) - 1
	if l.cursor < 0 {
		l.cursor = 0
	}
}
