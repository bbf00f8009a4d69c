// internal/scores/store.go
//
// Persistence of finished rounds and per-player tallies.
// Only outcomes are stored; an in-progress round is never persisted.
//
// Implementations:
//   - memory (this package): session-only, lost on exit.
//   - SQLite (sqlite.go):    durable, used when a database path is configured.
//
// The plain-text high-score file (highscores.go) is kept alongside either one.

package scores

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"
)

// ErrNotFound is returned by Stats for a player with no recorded rounds.
var ErrNotFound = errors.New("scores: player not found")

// Result is the outcome of one finished round.
type Result struct {
	RoundID      string
	Player       string
	Tier         string
	Won          bool
	AttemptsLeft int
	Daily        string // YYYY-MM-DD for daily rounds, empty otherwise
	FinishedAt   time.Time
}

// PlayerStats are the running tallies for one player.
type PlayerStats struct {
	Player      string `json:"player"`
	GamesPlayed int    `json:"gamesPlayed"`
	Wins        int    `json:"wins"`
	Streak      int    `json:"streak"`
}

// Store defines the persistence interface for round results.
type Store interface {
	// Record stores a result and updates the player's tallies.
	// Recording the same RoundID twice is a no-op.
	Record(ctx context.Context, r Result) error

	// Stats returns one player's tallies, or ErrNotFound.
	Stats(ctx context.Context, player string) (PlayerStats, error)

	// Top returns up to limit players, most wins first.
	Top(ctx context.Context, limit int) ([]PlayerStats, error)

	Close() error
}

// apply folds one result into s: played++, and wins/streak follow the outcome.
func (s *PlayerStats) apply(won bool) {
	s.GamesPlayed++
	if won {
		s.Wins++
		s.Streak++
	} else {
		s.Streak = 0
	}
}

// NormalizePlayer trims a name and replaces inner whitespace with '_' so it
// fits the whitespace-separated high-score format.
func NormalizePlayer(name string) string {
	f := strings.Fields(name)
	if len(f) == 0 {
		return "player"
	}
	return strings.Join(f, "_")
}

// rank orders by wins desc, then fewer games, then name.
func rank(list []PlayerStats) {
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.GamesPlayed != b.GamesPlayed {
			return a.GamesPlayed < b.GamesPlayed
		}
		return a.Player < b.Player
	})
}

const defaultTopLimit = 20
