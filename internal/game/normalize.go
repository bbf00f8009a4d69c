package game

import (
	"strings"
	"unicode"
)

// Normalize maps a letter to the form used for every comparison: lowercase.
func Normalize(r rune) rune { return unicode.ToLower(r) }

// NormalizeWord applies Normalize to every rune of s.
func NormalizeWord(s string) string { return strings.Map(Normalize, s) }

// isGuessable reports whether r has to be revealed to win.
// Punctuation and spaces in a word are shown from the start.
func isGuessable(r rune) bool { return unicode.IsLetter(r) }
