// internal/cli/session.go
//
// Interactive console session.
// Responsibilities:
//   - Ask for the player's name and a difficulty.
//   - Run rounds: render the board, read a letter, report the guess.
//   - On round end reveal the word, record the result, offer another round.
//
// Input ends cleanly on EOF at any prompt; an unfinished round is not recorded.

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/scores"
	"github.com/robalobadob/hangman/internal/ui"
	"github.com/robalobadob/hangman/internal/words"
)

// dailyChecker is implemented by stores that can tell whether the daily word was played.
type dailyChecker interface {
	DailyPlayed(ctx context.Context, player, date string) (bool, error)
}

// Session wires one player's console to an engine and a results store.
type Session struct {
	Engine     *game.Engine
	Store      scores.Store
	HighScores *scores.HighScoreFile // nil disables the high-score file
	Theme      ui.Theme
	Log        zerolog.Logger
	In         io.Reader
	Out        io.Writer

	Player string     // asked for when empty
	Tier   words.Tier // asked for each round when zero
	Daily  string     // date key; set for a single daily round
	Now    func() time.Time

	sc *bufio.Scanner
}

// Run plays rounds until the player declines another or input ends.
func (s *Session) Run(ctx context.Context) error {
	s.sc = bufio.NewScanner(s.In)
	if s.Now == nil {
		s.Now = time.Now
	}

	fmt.Fprintln(s.Out, s.Theme.Title("Welcome to Hangman - the classic word guessing game"))
	if strings.TrimSpace(s.Player) == "" {
		name, ok := s.ask("What is your name? ")
		if !ok {
			return nil
		}
		s.Player = name
	}
	s.Player = scores.NormalizePlayer(s.Player)

	if s.Daily != "" {
		if dc, ok := s.Store.(dailyChecker); ok {
			played, err := dc.DailyPlayed(ctx, s.Player, s.Daily)
			if err != nil {
				s.Log.Warn().Err(err).Msg("check daily")
			} else if played {
				fmt.Fprintf(s.Out, "You already played the daily word for %s. Come back tomorrow!\n", s.Daily)
				return nil
			}
		}
	}

	for {
		started, err := s.startRound()
		if err != nil || !started {
			return err
		}
		finished := s.playRound()
		if !finished {
			return nil
		}
		s.finishRound(ctx)

		if s.Daily != "" {
			return nil
		}
		again, ok := s.ask("Play again? [y,n]: ")
		if !ok || strings.EqualFold(strings.TrimSpace(again), "n") {
			fmt.Fprintln(s.Out, "Thanks for playing! Exiting the game...")
			return nil
		}
	}
}

// ask prints prompt and reads one line; ok is false on EOF.
func (s *Session) ask(prompt string) (string, bool) {
	fmt.Fprint(s.Out, prompt)
	if !s.sc.Scan() {
		fmt.Fprintln(s.Out)
		return "", false
	}
	return strings.TrimSpace(s.sc.Text()), true
}

// askTier shows the difficulty menu until a valid choice is made.
func (s *Session) askTier() (words.Tier, bool) {
	for {
		fmt.Fprintln(s.Out, "Select Difficulty:")
		for i, t := range words.Tiers {
			fmt.Fprintf(s.Out, "%d. %s\n", i+1, strings.ToUpper(t.String()[:1])+t.String()[1:])
		}
		in, ok := s.ask("> ")
		if !ok {
			return 0, false
		}
		t, err := words.ParseTier(in)
		if err == nil {
			return t, true
		}
		fmt.Fprintln(s.Out, s.Theme.Warn("Please choose 1, 2 or 3."))
	}
}

// startRound picks a tier and draws a word. started is false when input ended.
// An empty tier re-prompts unless the tier was fixed up front.
func (s *Session) startRound() (bool, error) {
	for {
		tier := s.Tier
		if tier == 0 {
			var ok bool
			if tier, ok = s.askTier(); !ok {
				return false, nil
			}
		}
		err := s.Engine.StartRound(tier)
		switch {
		case err == nil:
			s.Log.Debug().Str("round", s.Engine.RoundID()).Stringer("tier", tier).
				Int("letters", s.Engine.WordLength()).Msg("round started")
			fmt.Fprintf(s.Out, "Creating a new game for you %s\n", s.Player)
			return true, nil
		case errors.Is(err, game.ErrEmptyWordList) && s.Tier == 0:
			fmt.Fprintln(s.Out, s.Theme.Warn(fmt.Sprintf("No %s words available. Choose another difficulty.", tier)))
		default:
			return false, err
		}
	}
}

// playRound reads guesses until the round ends. It returns false if input ended first.
func (s *Session) playRound() bool {
	for {
		fmt.Fprintln(s.Out)
		fmt.Fprint(s.Out, ui.Board(s.Engine.Snapshot(), s.Theme))
		in, ok := s.ask(fmt.Sprintf("\n%s Please guess a letter: ", s.Player))
		if !ok {
			s.Log.Debug().Str("round", s.Engine.RoundID()).Msg("input closed mid-round")
			return false
		}
		res, err := s.Engine.GuessString(in)
		if errors.Is(err, game.ErrInvalidGuess) {
			fmt.Fprintln(s.Out, s.Theme.Warn("Please enter a single letter."))
			continue
		}
		if err != nil {
			// the round already ended; nothing left to guess
			return true
		}
		fmt.Fprintln(s.Out, ui.GuessMessage(res, s.Theme))
		if res.RoundEnded {
			return true
		}
	}
}

// finishRound reveals the word and records the outcome.
// Persistence failures are logged and do not end the session.
func (s *Session) finishRound(ctx context.Context) {
	round := s.Engine.Snapshot()
	fmt.Fprintln(s.Out)
	fmt.Fprint(s.Out, ui.Board(round, s.Theme))
	fmt.Fprintln(s.Out, ui.Outcome(round, s.Theme))

	won := round.State == game.Won
	s.Log.Debug().Str("round", round.ID).Stringer("tier", round.Tier).
		Stringer("state", round.State).Int("attemptsLeft", round.AttemptsLeft).Msg("round finished")

	err := s.Store.Record(ctx, scores.Result{
		RoundID:      round.ID,
		Player:       s.Player,
		Tier:         round.Tier.String(),
		Won:          won,
		AttemptsLeft: round.AttemptsLeft,
		Daily:        s.Daily,
		FinishedAt:   s.Now(),
	})
	if err != nil {
		s.Log.Warn().Err(err).Str("round", round.ID).Msg("record result")
	}

	if s.HighScores != nil {
		delta := 0
		if won {
			delta = 1
		}
		if err := s.HighScores.Add(s.Player, delta); err != nil {
			s.Log.Warn().Err(err).Str("path", s.HighScores.Path).Msg("write high scores")
		}
	}

	if st, err := s.Store.Stats(ctx, s.Player); err == nil {
		fmt.Fprintln(s.Out, s.Theme.Muted(fmt.Sprintf("Wins: %d  Played: %d  Streak: %d", st.Wins, st.GamesPlayed, st.Streak)))
	}
}
