package cli

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/sharenodes/internal/common"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// userMessage turns flow errors into the short messages shown at the prompt.
func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrNoRecipients):
		return "No user selected. Use 'stage <login>' first."
	case errors.Is(err, common.ErrNothingSelected):
		return "Nothing selected. Use 'select <file>' first."
	default:
		return "Error: " + err.Error()
	}
}

// preview shortens a note to its first line, at most n runes.
func preview(note string, n int) string {
	line, _, cut := strings.Cut(note, "\n")
	if utf8.RuneCountInString(line) > n {
		r := []rune(line)
		return string(r[:n-1]) + "…"
	}
	if cut {
		return line + " …"
	}
	return line
}
