// internal/game/engine.go
//
// Core game engine for Hangman rounds.
// Responsibilities:
//   - Draw a target word uniformly at random from the candidates of a tier.
//   - Apply letter guesses: normalize, detect repeats, bucket correct/incorrect.
//   - Track the attempt budget and state transitions: playing → won/lost.
//
// Notes:
//   - Candidate words come from a WordSource (see the words package).
//   - Randomness is owned by the engine and can be seeded or replaced for tests.
//   - An Engine holds one round at a time and is not safe for concurrent use.
package game

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/robalobadob/hangman/internal/words"
)

// WordSource returns the candidate words for a tier.
type WordSource interface {
	Candidates(tier words.Tier) ([]string, error)
}

// Picker chooses an index in [0, n).
type Picker func(n int) int

// Option configures an Engine.
type Option func(*Engine)

// WithRand draws words with r.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.pick = r.Intn }
}

// WithSeed draws words from a generator seeded with seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithPicker replaces random selection entirely (e.g. a daily word).
func WithPicker(p Picker) Option {
	return func(e *Engine) { e.pick = p }
}

// Engine owns the state of one Hangman round at a time.
type Engine struct {
	src  WordSource
	pick Picker

	id           string
	tier         words.Tier
	target       string
	guessed      map[rune]struct{}
	incorrect    map[rune]struct{}
	attemptsLeft int
	state        State
}

// New constructs an engine in the NotStarted state.
func New(src WordSource, opts ...Option) *Engine {
	e := &Engine{
		src:       src,
		guessed:   map[rune]struct{}{},
		incorrect: map[rune]struct{}{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.pick == nil {
		e.pick = rand.New(rand.NewSource(time.Now().UnixNano())).Intn
	}
	return e
}

// StartRound draws a new word for tier and resets all per-round state.
// On error the previous round (if any) is left untouched.
func (e *Engine) StartRound(tier words.Tier) error {
	cands, err := e.src.Candidates(tier)
	if err != nil {
		return err
	}
	if len(cands) == 0 {
		return fmt.Errorf("%w %s", ErrEmptyWordList, tier)
	}
	i := e.pick(len(cands))
	if i < 0 || i >= len(cands) {
		return fmt.Errorf("game: picker returned %d for %d candidates", i, len(cands))
	}

	e.id = uuid.NewString()
	e.tier = tier
	e.target = cands[i]
	e.guessed = map[rune]struct{}{}
	e.incorrect = map[rune]struct{}{}
	e.attemptsLeft = MaxAttempts
	e.state = InProgress
	return nil
}

// Reset starts a new round with the tier of the previous one.
func (e *Engine) Reset() error {
	if e.state == NotStarted {
		return ErrInvalidState
	}
	return e.StartRound(e.tier)
}

// ResetTier starts a new round with a different tier.
func (e *Engine) ResetTier(tier words.Tier) error { return e.StartRound(tier) }

// GuessString applies a guess typed by a user: exactly one letter after trimming.
func (e *Engine) GuessString(s string) (GuessResult, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) != 1 {
		return GuessResult{State: e.state, AttemptsLeft: e.attemptsLeft}, ErrInvalidGuess
	}
	r, _ := utf8.DecodeRuneInString(s)
	return e.Guess(r)
}

// Guess applies one letter to the current round.
//
// Rules:
//   - Only valid while a round is in progress (ErrInvalidState otherwise).
//   - A letter already guessed, right or wrong, changes nothing.
//   - A new wrong letter costs one attempt; reaching 0 loses the round.
//   - A new right letter is revealed; revealing every letter wins the round.
func (e *Engine) Guess(letter rune) (GuessResult, error) {
	if e.state != InProgress {
		return GuessResult{State: e.state, AttemptsLeft: e.attemptsLeft}, ErrInvalidState
	}
	if !isGuessable(letter) {
		return GuessResult{State: e.state, AttemptsLeft: e.attemptsLeft}, ErrInvalidGuess
	}
	l := Normalize(letter)
	res := GuessResult{Letter: l}

	_, right := e.guessed[l]
	_, wrong := e.incorrect[l]
	switch {
	case right || wrong:
		res.AlreadyGuessed = true
		res.Found = right
	case e.contains(l):
		res.Found = true
		e.guessed[l] = struct{}{}
		if e.allRevealed() {
			e.state = Won
		}
	default:
		e.incorrect[l] = struct{}{}
		if e.attemptsLeft > 0 {
			e.attemptsLeft--
		}
		if e.attemptsLeft == 0 {
			e.state = Lost
		}
	}

	res.RoundEnded = !res.AlreadyGuessed && e.state.Over()
	res.State = e.state
	res.AttemptsLeft = e.attemptsLeft
	return res, nil
}

// contains reports whether l occurs in the target, ignoring case.
func (e *Engine) contains(l rune) bool {
	for _, r := range e.target {
		if Normalize(r) == l {
			return true
		}
	}
	return false
}

// allRevealed reports whether every letter of the target has been guessed.
func (e *Engine) allRevealed() bool {
	for _, r := range e.target {
		if !isGuessable(r) {
			continue
		}
		if _, ok := e.guessed[Normalize(r)]; !ok {
			return false
		}
	}
	return true
}

func (e *Engine) State() State { return e.state }

func (e *Engine) IsWon() bool  { return e.state == Won }
func (e *Engine) IsLost() bool { return e.state == Lost }
func (e *Engine) IsOver() bool { return e.state.Over() }

// AttemptsRemaining returns how many wrong guesses are left, in [0, MaxAttempts].
func (e *Engine) AttemptsRemaining() int { return e.attemptsLeft }

// TargetWord returns the word for the end-of-round reveal.
func (e *Engine) TargetWord() string { return e.target }

func (e *Engine) Tier() words.Tier { return e.tier }
func (e *Engine) RoundID() string  { return e.id }

// WordLength returns the target length in letters.
func (e *Engine) WordLength() int { return utf8.RuneCountInString(e.target) }

func (e *Engine) GuessedLetters() []rune          { return sortedLetters(e.guessed) }
func (e *Engine) IncorrectGuessedLetters() []rune { return sortedLetters(e.incorrect) }

// Masked returns the target with every unrevealed letter shown as '_'.
func (e *Engine) Masked() string {
	var b strings.Builder
	for _, r := range e.target {
		if _, ok := e.guessed[Normalize(r)]; ok || !isGuessable(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}

// Snapshot copies the current round for rendering or persistence.
func (e *Engine) Snapshot() Round {
	return Round{
		ID:           e.id,
		Tier:         e.tier,
		Target:       e.target,
		Masked:       e.Masked(),
		Guessed:      e.GuessedLetters(),
		Incorrect:    e.IncorrectGuessedLetters(),
		AttemptsLeft: e.attemptsLeft,
		State:        e.state,
	}
}

func sortedLetters(set map[rune]struct{}) []rune {
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
