package ui

import (
	"strings"
	"testing"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/words"
)

func TestGallowsClamps(t *testing.T) {
	if Gallows(-3) != Gallows(0) {
		t.Error("negative misses should render the empty gallows")
	}
	if Gallows(99) != Gallows(game.MaxAttempts) {
		t.Error("too many misses should render the full figure")
	}
	if strings.Contains(Gallows(0), "O") {
		t.Error("empty gallows has a head")
	}
	if !strings.Contains(Gallows(game.MaxAttempts), "/ \\") {
		t.Error("full figure is missing legs")
	}
}

func TestBoardPlain(t *testing.T) {
	r := game.Round{
		Tier:         words.Easy,
		Target:       "cat",
		Masked:       "c__",
		Guessed:      []rune{'c'},
		Incorrect:    []rune{'x', 'z'},
		AttemptsLeft: 4,
		State:        game.InProgress,
	}
	out := Board(r, Plain())
	for _, want := range []string{
		Gallows(2),
		"Attempts Left: 4",
		"Word: c _ _  (easy)",
		"Incorrect Guessed Letters: x z",
		"Guessed Letters: c",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("board missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "cat") {
		t.Error("board leaks the target word mid-round")
	}
}

func TestGuessMessage(t *testing.T) {
	th := Plain()
	tests := []struct {
		res  game.GuessResult
		want string
	}{
		{game.GuessResult{Letter: 'a', Found: true}, "Good guess! The letter 'a' is in the word!"},
		{game.GuessResult{Letter: 'q'}, "Incorrect guess!"},
		{game.GuessResult{Letter: 'a', Found: true, AlreadyGuessed: true}, "You already guessed the letter 'a'."},
		{game.GuessResult{Letter: 'q', AlreadyGuessed: true}, "The letter 'q' has already been guessed incorrectly."},
	}
	for _, tt := range tests {
		if got := GuessMessage(tt.res, th); got != tt.want {
			t.Errorf("GuessMessage(%+v)=%q, want %q", tt.res, got, tt.want)
		}
	}
}

func TestOutcome(t *testing.T) {
	th := Plain()
	if got := Outcome(game.Round{Target: "Abate", State: game.Won}, th); got != "You win! You guessed the word - Abate" {
		t.Errorf("win outcome=%q", got)
	}
	if got := Outcome(game.Round{Target: "dog", State: game.Lost}, th); got != "You lose! The word was - dog" {
		t.Errorf("loss outcome=%q", got)
	}
	if got := Outcome(game.Round{State: game.InProgress}, th); got != "" {
		t.Errorf("in-progress outcome=%q", got)
	}
}
