// internal/ui/render.go
//
// Text rendering of a round: the gallows, the masked word and the letter lists.
// Everything returns strings; writing them out is the caller's job.

package ui

import (
	"fmt"
	"strings"

	"github.com/robalobadob/hangman/internal/game"
)

// gallows holds one drawing per number of wrong guesses, 0..game.MaxAttempts.
var gallows = [game.MaxAttempts + 1]string{
	"  ----\n  |  |\n     |\n     |\n     |\n     |\n=========",
	"  ----\n  |  |\n  O  |\n     |\n     |\n     |\n=========",
	"  ----\n  |  |\n  O  |\n  |  |\n     |\n     |\n=========",
	"  ----\n  |  |\n  O  |\n /|  |\n     |\n     |\n=========",
	"  ----\n  |  |\n  O  |\n /|\\ |\n     |\n     |\n=========",
	"  ----\n  |  |\n  O  |\n /|\\ |\n /   |\n     |\n=========",
	"  ----\n  |  |\n  O  |\n /|\\ |\n / \\ |\n     |\n=========",
}

// Gallows returns the drawing for misses wrong guesses, clamped to the valid range.
func Gallows(misses int) string {
	if misses < 0 {
		misses = 0
	}
	if misses > game.MaxAttempts {
		misses = game.MaxAttempts
	}
	return gallows[misses]
}

// SpacedWord puts a space between letters so blanks are countable: "c _ t".
func SpacedWord(masked string) string {
	return strings.Join(strings.Split(masked, ""), " ")
}

func letters(rs []rune) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// Board renders the full game screen for r.
func Board(r game.Round, th Theme) string {
	var b strings.Builder
	b.WriteString(Gallows(game.MaxAttempts-r.AttemptsLeft))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Attempts Left: %d\n", r.AttemptsLeft)
	fmt.Fprintf(&b, "Word: %s  %s\n", th.Word(SpacedWord(r.Masked)), th.Muted(fmt.Sprintf("(%s)", r.Tier)))
	fmt.Fprintf(&b, "Incorrect Guessed Letters: %s\n", th.Bad(letters(r.Incorrect)))
	fmt.Fprintf(&b, "Guessed Letters: %s\n", th.Good(letters(r.Guessed)))
	return b.String()
}

// GuessMessage describes a guess result in one line.
func GuessMessage(res game.GuessResult, th Theme) string {
	switch {
	case res.AlreadyGuessed && res.Found:
		return th.Warn(fmt.Sprintf("You already guessed the letter '%c'.", res.Letter))
	case res.AlreadyGuessed:
		return th.Warn(fmt.Sprintf("The letter '%c' has already been guessed incorrectly.", res.Letter))
	case res.Found:
		return th.Good(fmt.Sprintf("Good guess! The letter '%c' is in the word!", res.Letter))
	}
	return th.Bad("Incorrect guess!")
}

// Outcome is the end-of-round line revealing the word.
func Outcome(r game.Round, th Theme) string {
	switch r.State {
	case game.Won:
		return th.Good("You win! You guessed the word - " + r.Target)
	case game.Lost:
		return th.Bad("You lose! The word was - " + r.Target)
	}
	return ""
}
