package editor

import (
	"strings"

	"github.com/abhisek/gradepad/internal/latex"
)

// commandStart returns the index of the backslash that begins the
// partial command the caret sits in, or -1 when the caret is not
// immediately after a backslash-prefixed run of letters. An escaped
// backslash (`\\`) does not start a command.
func commandStart(line string, col int) int {
	if col > len(line) {
		col = len(line)
	}
	i := col
	for i > 0 && isLetter(line[i-1]) {
		i--
	}
	if i == 0 || line[i-1] != '\\' {
		return -1
	}
	if i == col {
		// Lone backslash with no letters yet.
		return -1
	}
	start := i - 1
	if start > 0 && line[start-1] == '\\' {
		return -1
	}
	return start
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// suggest returns the command-list entries that extend the partial
// command ending at col. The exact current input is excluded: a fully
// typed command needs no suggestion. start is the backslash index, or
// -1 when there is nothing to complete.
func suggest(line string, col int) (start int, matches []string) {
	start = commandStart(line, col)
	if start < 0 {
		return -1, nil
	}
	partial := line[start+1 : col]
	for _, cmd := range latex.Commands {
		if cmd != partial && strings.HasPrefix(cmd, partial) {
			matches = append(matches, cmd)
		}
	}
	if len(matches) == 0 {
		return -1, nil
	}
	return start, matches
}
