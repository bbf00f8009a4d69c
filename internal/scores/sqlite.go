// internal/scores/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying migrations embedded in the binary (idempotent, recorded in _migrations).
//   - Recording round results and maintaining per-player tallies in one transaction.

package scores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/assets"
)

// SQLiteStore implements Store on a SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if missing) the database at dsn and migrates it.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(ctx, db, assets.FS, assets.MigrationsDir); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// openDB opens a SQLite file, creating its parent directory for relative
// paths like ./data/hangman.db, with busy timeout, WAL and foreign keys.
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	// one writer; keeps per-connection pragmas consistent
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies *.sql files from dir in fsys in lexical order.
//
//   - A _migrations table tracks applied file names.
//   - Scripts that manage their own transaction (BEGIN TRANSACTION, or
//     PRAGMA FOREIGN_KEYS=OFF) run outside an outer transaction.
func migrate(ctx context.Context, db *sql.DB, fsys fs.FS, dir string) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	var files []string
	if err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, p)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk %s: %w", dir, err)
	}
	sort.Strings(files)

	for _, f := range files {
		name := path.Base(f)
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, name).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", name).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := fs.ReadFile(fsys, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		sqlText := string(sqlBytes)

		upper := strings.ToUpper(sqlText)
		selfManaged := strings.Contains(upper, "BEGIN TRANSACTION") ||
			strings.Contains(upper, "PRAGMA FOREIGN_KEYS=OFF") ||
			strings.Contains(upper, "PRAGMA FOREIGN_KEYS = OFF")

		if selfManaged {
			if _, err := db.ExecContext(ctx, sqlText); err != nil {
				return fmt.Errorf("apply %s: %w", name, err)
			}
			if _, err := db.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, name); err != nil {
				return fmt.Errorf("record %s: %w", name, err)
			}
			log.Info().Str("migration", name).Msg("applied (self-managed)")
			continue
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, sqlText); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", name, err)
		}
		log.Info().Str("migration", name).Msg("applied")
	}
	return nil
}

// Record inserts the result row and bumps the player's tallies.
// A RoundID already present is ignored (INSERT OR IGNORE).
func (s *SQLiteStore) Record(ctx context.Context, r Result) error {
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}
	now := r.FinishedAt.UTC().Format(time.RFC3339)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO players (name, created_at) VALUES (?, ?) ON CONFLICT(name) DO NOTHING`,
		r.Player, now,
	); err != nil {
		return fmt.Errorf("upsert player: %w", err)
	}

	var daily any
	if r.Daily != "" {
		daily = r.Daily
	}
	res, err := tx.ExecContext(ctx, `
        INSERT OR IGNORE INTO results
            (round_id, player, tier, won, attempts_left, daily_date, finished_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RoundID, r.Player, r.Tier, r.Won, r.AttemptsLeft, daily, now,
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		log.Debug().Str("round", r.RoundID).Msg("result already recorded")
		return nil
	}

	if err := bumpStats(ctx, tx, r.Player, r.Won); err != nil {
		return fmt.Errorf("bump stats: %w", err)
	}
	return tx.Commit()
}

// bumpStats increments games played; updates wins and streak based on result (within tx).
func bumpStats(ctx context.Context, tx *sql.Tx, player string, won bool) error {
	var p PlayerStats
	row := tx.QueryRowContext(ctx, `SELECT games_played, wins, streak FROM players WHERE name=?`, player)
	if err := row.Scan(&p.GamesPlayed, &p.Wins, &p.Streak); err != nil {
		return err
	}
	p.apply(won)
	_, err := tx.ExecContext(ctx, `UPDATE players SET games_played=?, wins=?, streak=? WHERE name=?`,
		p.GamesPlayed, p.Wins, p.Streak, player)
	return err
}

func (s *SQLiteStore) Stats(ctx context.Context, player string) (PlayerStats, error) {
	p := PlayerStats{Player: player}
	err := s.db.QueryRowContext(ctx,
		`SELECT games_played, wins, streak FROM players WHERE name=?`, player,
	).Scan(&p.GamesPlayed, &p.Wins, &p.Streak)
	if errors.Is(err, sql.ErrNoRows) {
		return PlayerStats{}, ErrNotFound
	}
	if err != nil {
		return PlayerStats{}, err
	}
	return p, nil
}

func (s *SQLiteStore) Top(ctx context.Context, limit int) ([]PlayerStats, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT name, games_played, wins, streak
        FROM players
        ORDER BY wins DESC, games_played ASC, name ASC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PlayerStats, 0, limit)
	for rows.Next() {
		var p PlayerStats
		if err := rows.Scan(&p.Player, &p.GamesPlayed, &p.Wins, &p.Streak); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// DailyPlayed reports whether player already finished the daily round for date.
func (s *SQLiteStore) DailyPlayed(ctx context.Context, player, date string) (bool, error) {
	var cnt int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM results WHERE player=? AND daily_date=?`,
		player, date,
	).Scan(&cnt); err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
