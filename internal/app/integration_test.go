package app

import (
	"bytes"
	"testing"
	"time"

	"github.com/Akashdeep-Patra/zed-git-stage/internal/git"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

func TestAppStartsAndQuits(t *testing.T) {
	svc := &fakeService{res: &git.StatusResult{}}
	tm := teatest.NewTestModel(
		t,
		New(svc, testConfig(), nil),
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("Working tree clean"))
		},
		teatest.WithCheckInterval(50*time.Millisecond),
		teatest.WithDuration(2*time.Second),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}

func TestAppRendersGroupedFileList(t *testing.T) {
	svc := &fakeService{res: &git.StatusResult{
		Staged:    []git.FileStatus{{Code: git.StatusAdded, Path: "added.go", Staged: true}},
		Unstaged:  []git.FileStatus{{Code: git.StatusModified, Path: "changed.go"}},
		Untracked: []git.FileStatus{{Code: git.StatusUntracked, Path: "notes.txt"}},
	}}
	tm := teatest.NewTestModel(
		t,
		New(svc, testConfig(), nil),
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("Changes to be committed:")) &&
				bytes.Contains(bts, []byte("new file:")) &&
				bytes.Contains(bts, []byte("notes.txt"))
		},
		teatest.WithCheckInterval(50*time.Millisecond),
		teatest.WithDuration(2*time.Second),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}

func TestAppShowsHelpOverlay(t *testing.T) {
	svc := &fakeService{res: &git.StatusResult{}}
	tm := teatest.NewTestModel(
		t,
		New(svc, testConfig(), nil),
		teatest.WithInitialTermSize(80, 24),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})

	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("Keyboard Shortcuts"))
		},
		teatest.WithCheckInterval(50*time.Millisecond),
		teatest.WithDuration(2*time.Second),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}
