package git

import "strings"

// ParseStatusOutput parses `git status --porcelain=v1 -z`.
//
// Each entry is categorised by its two status columns: a non-blank index
// column (X) yields a staged entry, a non-blank worktree column (Y) yields
// an unstaged entry, and `??` yields an untracked entry. A partially
// staged path therefore produces one entry in Staged AND one in Unstaged;
// the two are distinct by Key.
//
// NUL-delimited scanning avoids allocating a massive []string for repos
// with thousands of changed files.
func ParseStatusOutput(out string) *StatusResult {
	result := &StatusResult{}
	if len(out) == 0 {
		return result
	}

	result.Staged = make([]FileStatus, 0, 32)
	result.Unstaged = make([]FileStatus, 0, 32)
	result.Untracked = make([]FileStatus, 0, 16)

	for len(out) > 0 {
		nul := strings.IndexByte(out, '\x00')
		var entry string
		if nul < 0 {
			entry = out
			out = ""
		} else {
			entry = out[:nul]
			out = out[nul+1:]
		}
		if len(entry) < 4 {
			continue
		}

		index := StatusCode(entry[0])
		worktree := StatusCode(entry[1])
		path := entry[3:]

		// Ignored entries are never shown.
		if index == '!' && worktree == '!' {
			continue
		}

		// Renames/copies carry an extra NUL-separated entry with the
		// original path.
		var origPath string
		if index == StatusRenamed || index == StatusCopied ||
			worktree == StatusRenamed || worktree == StatusCopied {
			nul2 := strings.IndexByte(out, '\x00')
			if nul2 < 0 {
				origPath = out
				out = ""
			} else {
				origPath = out[:nul2]
				out = out[nul2+1:]
			}
		}

		if index == StatusUntracked && worktree == StatusUntracked {
			result.Untracked = append(result.Untracked, FileStatus{
				Code: StatusUntracked,
				Path: path,
			})
			continue
		}

		if index != StatusUnmodified && index != StatusUntracked {
			result.Staged = append(result.Staged, FileStatus{
				Code:     index,
				Path:     path,
				OrigPath: origPath,
				Staged:   true,
			})
		}
		if worktree != StatusUnmodified && worktree != StatusUntracked {
			result.Unstaged = append(result.Unstaged, FileStatus{
				Code:     worktree,
				Path:     path,
				OrigPath: origPath,
			})
		}
	}
	return result
}
