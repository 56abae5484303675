// Package clean normalizes strings pulled out of HTML before they are printed.
package clean

import "strings"

// Mode selects the cleaning function used by the app.
type Mode string

const (
	// ModeDelete removes control characters outright. Adjacent words may merge.
	ModeDelete Mode = "delete"
	// ModeSpaced replaces each run of control characters with one space.
	ModeSpaced Mode = "spaced"
)

var controlRemover = strings.NewReplacer("\r", "", "\t", "", "\n", "")

// Text deletes every carriage return, tab and newline, then trims
// leading and trailing whitespace. "Hello\nWorld" becomes "HelloWorld".
func Text(s string) string {
	return strings.TrimSpace(controlRemover.Replace(s))
}

// Spaced is like Text but collapses each run of \r, \t and \n into a single
// space so words on separate lines stay separate.
func Spaced(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if r == '\r' || r == '\t' || r == '\n' {
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
			continue
		}
		b.WriteRune(r)
		inRun = false
	}
	return strings.TrimSpace(b.String())
}

// Func returns the cleaner for m. Unknown modes fall back to Text.
func Func(m Mode) func(string) string {
	if m == ModeSpaced {
		return Spaced
	}
	return Text
}

// Valid reports whether m names a known mode. The empty mode is valid and
// means ModeDelete.
func Valid(m Mode) bool {
	switch m {
	case "", ModeDelete, ModeSpaced:
		return true
	}
	return false
}

// All applies fn to every element of xs and returns a new slice.
// A nil or empty input yields an empty, non-nil slice.
func All(xs []string, fn func(string) string) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		out = append(out, fn(x))
	}
	return out
}
