package game

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/robalobadob/hangman/internal/words"
)

func newTestEngine(t *testing.T, corpus ...string) *Engine {
	t.Helper()
	return New(words.NewSource(words.StaticCorpus(corpus), nil), WithSeed(1))
}

func startRound(t *testing.T, e *Engine, tier words.Tier) {
	t.Helper()
	if err := e.StartRound(tier); err != nil {
		t.Fatalf("StartRound(%s): %v", tier, err)
	}
}

func mustGuess(t *testing.T, e *Engine, r rune) GuessResult {
	t.Helper()
	res, err := e.Guess(r)
	if err != nil {
		t.Fatalf("Guess(%q): %v", r, err)
	}
	return res
}

func TestStartRoundInitialState(t *testing.T) {
	e := newTestEngine(t, "cat", "dog", "owl")
	if e.State() != NotStarted {
		t.Fatalf("state=%s, want not_started", e.State())
	}
	startRound(t, e, words.Easy)

	if got := e.AttemptsRemaining(); got != MaxAttempts {
		t.Fatalf("AttemptsRemaining=%d, want %d", got, MaxAttempts)
	}
	if len(e.GuessedLetters()) != 0 || len(e.IncorrectGuessedLetters()) != 0 {
		t.Fatalf("letter sets not empty after start")
	}
	if e.IsOver() || e.State() != InProgress {
		t.Fatalf("round should be in progress, state=%s", e.State())
	}
	if e.RoundID() == "" {
		t.Fatal("expected a round id")
	}
}

func TestWinScenarioCat(t *testing.T) {
	e := newTestEngine(t, "cat")
	startRound(t, e, words.Easy)
	if e.TargetWord() != "cat" {
		t.Fatalf("TargetWord=%q, want cat", e.TargetWord())
	}

	for _, r := range "ca" {
		res := mustGuess(t, e, r)
		if !res.Found || res.RoundEnded {
			t.Fatalf("Guess(%q)=%+v, want found and continuing", r, res)
		}
	}
	res := mustGuess(t, e, 't')
	if !res.Found || !res.RoundEnded || res.State != Won {
		t.Fatalf("Guess('t')=%+v, want found and won", res)
	}
	if !e.IsWon() || e.IsLost() {
		t.Fatalf("IsWon=%v IsLost=%v", e.IsWon(), e.IsLost())
	}
	if e.AttemptsRemaining() != MaxAttempts {
		t.Fatalf("correct guesses must not cost attempts, got %d", e.AttemptsRemaining())
	}
}

func TestLossScenarioDog(t *testing.T) {
	e := newTestEngine(t, "dog")
	startRound(t, e, words.Easy)

	for i, r := range "xyzqwv" {
		res := mustGuess(t, e, r)
		if res.Found {
			t.Fatalf("Guess(%q) unexpectedly found", r)
		}
		last := i == MaxAttempts-1
		if res.RoundEnded != last {
			t.Fatalf("Guess(%q) RoundEnded=%v, want %v", r, res.RoundEnded, last)
		}
		if res.AttemptsLeft != MaxAttempts-1-i {
			t.Fatalf("after %q attempts=%d, want %d", r, res.AttemptsLeft, MaxAttempts-1-i)
		}
	}
	if e.AttemptsRemaining() != 0 || !e.IsLost() || e.IsWon() {
		t.Fatalf("attempts=%d lost=%v won=%v", e.AttemptsRemaining(), e.IsLost(), e.IsWon())
	}
	if _, err := e.Guess('a'); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("guess after loss err=%v, want ErrInvalidState", err)
	}
	if e.AttemptsRemaining() != 0 {
		t.Fatalf("attempts went below zero: %d", e.AttemptsRemaining())
	}
}

func TestRepeatedGuessesChangeNothing(t *testing.T) {
	e := newTestEngine(t, "dog")
	startRound(t, e, words.Easy)

	mustGuess(t, e, 'x')
	mustGuess(t, e, 'd')
	before := e.AttemptsRemaining()

	for _, r := range []rune{'x', 'X', 'd', 'D'} {
		res := mustGuess(t, e, r)
		if !res.AlreadyGuessed || res.RoundEnded {
			t.Fatalf("Guess(%q)=%+v, want already guessed", r, res)
		}
	}
	if e.AttemptsRemaining() != before {
		t.Fatalf("attempts changed on repeat: %d -> %d", before, e.AttemptsRemaining())
	}
	if got := e.GuessedLetters(); len(got) != 1 || got[0] != 'd' {
		t.Fatalf("GuessedLetters=%q", string(got))
	}
	if got := e.IncorrectGuessedLetters(); len(got) != 1 || got[0] != 'x' {
		t.Fatalf("IncorrectGuessedLetters=%q", string(got))
	}
}

func TestCaseInsensitiveMatching(t *testing.T) {
	e := newTestEngine(t, "Abate")
	startRound(t, e, words.Easy)

	for _, r := range "ABT" {
		if res := mustGuess(t, e, r); !res.Found {
			t.Fatalf("Guess(%q) not found in %q", r, e.TargetWord())
		}
	}
	if e.IsWon() {
		t.Fatal("round won before 'e' was guessed")
	}
	if got := e.Masked(); got != "Abat_" {
		t.Fatalf("Masked=%q, want Abat_", got)
	}
	res := mustGuess(t, e, 'e')
	if !res.RoundEnded || !e.IsWon() {
		t.Fatalf("expected win, got %+v", res)
	}
	for _, r := range e.GuessedLetters() {
		if r != Normalize(r) {
			t.Fatalf("guessed set holds non-normalized letter %q", r)
		}
	}
}

func TestSetsStayDisjoint(t *testing.T) {
	e := newTestEngine(t, "Meadow")
	startRound(t, e, words.Medium)

	for _, r := range "mMxXeEzaAq" {
		if _, err := e.Guess(r); err != nil {
			t.Fatalf("Guess(%q): %v", r, err)
		}
	}
	wrong := map[rune]bool{}
	for _, r := range e.IncorrectGuessedLetters() {
		wrong[r] = true
	}
	for _, r := range e.GuessedLetters() {
		if wrong[r] {
			t.Fatalf("letter %q in both sets", r)
		}
	}
	if n := e.AttemptsRemaining(); n < 0 || n > MaxAttempts {
		t.Fatalf("attempts out of range: %d", n)
	}
}

func TestNonLetterCharactersAreRevealed(t *testing.T) {
	e := newTestEngine(t, "x-ray")
	startRound(t, e, words.Easy)
	if got := e.Masked(); got != "_-___" {
		t.Fatalf("Masked=%q", got)
	}
	for _, r := range "xray" {
		mustGuess(t, e, r)
	}
	if !e.IsWon() {
		t.Fatal("hyphen should not be required to win")
	}
}

func TestInvalidGuessInput(t *testing.T) {
	e := newTestEngine(t, "cat")
	startRound(t, e, words.Easy)

	for _, in := range []string{"", "ab", "  ", "7", "!"} {
		if _, err := e.GuessString(in); !errors.Is(err, ErrInvalidGuess) {
			t.Errorf("GuessString(%q) err=%v, want ErrInvalidGuess", in, err)
		}
	}
	if e.AttemptsRemaining() != MaxAttempts {
		t.Fatalf("invalid input cost attempts: %d", e.AttemptsRemaining())
	}
	res, err := e.GuessString(" C ")
	if err != nil || !res.Found {
		t.Fatalf("GuessString(\" C \")=%+v, %v", res, err)
	}
}

func TestGuessBeforeStartIsInvalidState(t *testing.T) {
	e := newTestEngine(t, "cat")
	if _, err := e.Guess('c'); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("err=%v, want ErrInvalidState", err)
	}
	if err := e.Reset(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Reset before start err=%v, want ErrInvalidState", err)
	}
}

func TestEmptyWordList(t *testing.T) {
	e := newTestEngine(t, "cat", "Meadow")
	if err := e.StartRound(words.Hard); !errors.Is(err, ErrEmptyWordList) {
		t.Fatalf("err=%v, want ErrEmptyWordList", err)
	}
	if e.State() != NotStarted {
		t.Fatalf("failed start changed state to %s", e.State())
	}
}

func TestLetterFreeLinesNeverBecomeTargets(t *testing.T) {
	e := newTestEngine(t, "42", "---")
	if err := e.StartRound(words.Easy); !errors.Is(err, ErrEmptyWordList) {
		t.Fatalf("err=%v, want ErrEmptyWordList", err)
	}

	e = newTestEngine(t, "42", "ox", "---")
	for i := 0; i < 20; i++ {
		startRound(t, e, words.Easy)
		if e.TargetWord() != "ox" {
			t.Fatalf("target=%q, want ox", e.TargetWord())
		}
	}
	mustGuess(t, e, 'o')
	if res := mustGuess(t, e, 'x'); !res.RoundEnded || !e.IsWon() {
		t.Fatalf("res=%+v state=%s, want won", res, e.State())
	}
}

func TestSourceUnavailablePropagates(t *testing.T) {
	missing := words.FileCorpus{Path: filepath.Join(t.TempDir(), "missing.txt")}
	e := New(words.NewSource(missing, nil))
	for _, tier := range words.Tiers {
		if err := e.StartRound(tier); !errors.Is(err, words.ErrSourceUnavailable) {
			t.Fatalf("StartRound(%s) err=%v, want ErrSourceUnavailable", tier, err)
		}
	}
}

func TestFailedStartKeepsPreviousRound(t *testing.T) {
	e := newTestEngine(t, "cat")
	startRound(t, e, words.Easy)
	mustGuess(t, e, 'c')
	if err := e.StartRound(words.Hard); !errors.Is(err, ErrEmptyWordList) {
		t.Fatalf("err=%v", err)
	}
	if e.State() != InProgress || e.TargetWord() != "cat" || len(e.GuessedLetters()) != 1 {
		t.Fatalf("previous round was disturbed: %+v", e.Snapshot())
	}
}

func TestResetClearsRound(t *testing.T) {
	e := newTestEngine(t, "dog")
	startRound(t, e, words.Easy)
	firstID := e.RoundID()
	for _, r := range "xyzqwv" {
		mustGuess(t, e, r)
	}
	if !e.IsLost() {
		t.Fatal("expected loss")
	}
	if err := e.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if e.IsOver() || e.AttemptsRemaining() != MaxAttempts || e.Tier() != words.Easy {
		t.Fatalf("reset round not fresh: %+v", e.Snapshot())
	}
	if len(e.GuessedLetters())+len(e.IncorrectGuessedLetters()) != 0 {
		t.Fatal("letter sets survived reset")
	}
	if e.RoundID() == firstID {
		t.Fatal("reset should issue a new round id")
	}
}

func TestSelectionIsUniformOverCandidates(t *testing.T) {
	corpus := []string{"ant", "bee", "cow", "Elephant", "doe"}
	e := newTestEngine(t, corpus...)
	seen := map[string]int{}
	for i := 0; i < 400; i++ {
		startRound(t, e, words.Easy)
		seen[e.TargetWord()]++
	}
	if seen["Elephant"] != 0 {
		t.Fatal("drew a word outside the tier")
	}
	for _, w := range []string{"ant", "bee", "cow", "doe"} {
		if seen[w] < 50 {
			t.Errorf("word %q drawn %d/400 times", w, seen[w])
		}
	}
}

func TestSeededEnginesAgree(t *testing.T) {
	corpus := words.StaticCorpus{"ant", "bee", "cow", "doe", "elk", "fox"}
	a := New(words.NewSource(corpus, nil), WithSeed(42))
	b := New(words.NewSource(corpus, nil), WithSeed(42))
	for i := 0; i < 10; i++ {
		startRound(t, a, words.Easy)
		startRound(t, b, words.Easy)
		if a.TargetWord() != b.TargetWord() {
			t.Fatalf("draw %d differs: %q vs %q", i, a.TargetWord(), b.TargetWord())
		}
	}
}

func TestPickerOutOfRange(t *testing.T) {
	e := New(words.NewSource(words.StaticCorpus{"cat"}, nil), WithPicker(func(n int) int { return n }))
	if err := e.StartRound(words.Easy); err == nil {
		t.Fatal("expected error for out-of-range picker")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	e := newTestEngine(t, "cat")
	startRound(t, e, words.Easy)
	mustGuess(t, e, 'c')
	snap := e.Snapshot()
	snap.Guessed[0] = 'z'
	if e.GuessedLetters()[0] != 'c' {
		t.Fatal("snapshot aliases engine state")
	}
	if snap.Masked != "c__" || snap.State != InProgress {
		t.Fatalf("snapshot=%+v", snap)
	}
}
