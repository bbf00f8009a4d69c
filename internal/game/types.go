// internal/game/types.go
//
// Core type definitions for the Hangman game engine.
// Defines:
//   - State: lifecycle of a round (not started → playing → won/lost).
//   - GuessResult: outcome of a single letter guess.
//   - Round: read-only snapshot of the current round.
//   - Sentinel errors returned by the engine.

package game

import (
	"errors"

	"github.com/robalobadob/hangman/internal/words"
)

// MaxAttempts is the number of incorrect guesses allowed per round.
const MaxAttempts = 6

// State is the lifecycle position of the engine's current round.
type State int

const (
	NotStarted State = iota
	InProgress
	Won
	Lost
)

// String returns the coarse state name ("not_started"/"playing"/"won"/"lost").
func (s State) String() string {
	switch s {
	case InProgress:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "not_started"
}

// Over reports whether s is a terminal state.
func (s State) Over() bool { return s == Won || s == Lost }

var (
	// ErrEmptyWordList: the requested tier matched no words in the corpus.
	ErrEmptyWordList = errors.New("game: no words for tier")
	// ErrInvalidState: a guess was made while no round is in progress.
	ErrInvalidState = errors.New("game: no round in progress")
	// ErrInvalidGuess: the input was not exactly one letter.
	ErrInvalidGuess = errors.New("game: guess must be a single letter")
)

// GuessResult tells the caller what one guess did.
//
//	Found  RoundEnded
//	true   false       correct guess, round continues
//	true   true        correct guess, round won
//	false  false       wrong guess, round continues (or a repeat, see AlreadyGuessed)
//	false  true        wrong guess, round lost
type GuessResult struct {
	Letter         rune  // normalized (lowercase) letter
	Found          bool  // letter occurs in the target word
	AlreadyGuessed bool  // letter was guessed before; nothing changed
	RoundEnded     bool  // this guess finished the round
	State          State // state after the guess
	AttemptsLeft   int   // attempts remaining after the guess
}

// Round is a snapshot of the engine's current round.
// Slices are copies; mutating them does not affect the engine.
type Round struct {
	ID           string     // unique round identifier (uuid)
	Tier         words.Tier // difficulty the word was drawn from
	Target       string     // the word, case as sourced
	Masked       string     // target with unrevealed letters replaced by '_'
	Guessed      []rune     // correct letters, sorted
	Incorrect    []rune     // wrong letters, sorted
	AttemptsLeft int
	State        State
}
