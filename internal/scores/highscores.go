package scores

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
)

// HighScoreFile is a text file of "name score" lines, one player per line.
type HighScoreFile struct {
	Path string
}

// Read parses the file. A missing file is an empty table.
func (h HighScoreFile) Read() (map[string]int, error) {
	out := map[string]int{}
	f, err := os.Open(h.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return out, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s:%d: want \"name score\", got %q", h.Path, n, sc.Text())
		}
		score, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad score: %w", h.Path, n, err)
		}
		out[fields[0]] = score
	}
	return out, sc.Err()
}

// Write replaces the file with scores, one "name score" line per player, sorted by name.
// Names that normalize to the same player are merged by summing their scores.
func (h HighScoreFile) Write(scores map[string]int) error {
	merged := make(map[string]int, len(scores))
	for name, s := range scores {
		merged[NormalizePlayer(name)] += s
	}
	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s %d\n", name, merged[name])
	}
	return os.WriteFile(h.Path, []byte(b.String()), 0o644)
}

// Add increases player's score by delta and rewrites the file.
func (h HighScoreFile) Add(player string, delta int) error {
	scores, err := h.Read()
	if err != nil {
		return err
	}
	scores[NormalizePlayer(player)] += delta
	return h.Write(scores)
}

// Ranked returns the table as PlayerStats, highest score first.
func (h HighScoreFile) Ranked(limit int) ([]PlayerStats, error) {
	scores, err := h.Read()
	if err != nil {
		return nil, err
	}
	out := make([]PlayerStats, 0, len(scores))
	for name, s := range scores {
		out = append(out, PlayerStats{Player: name, Wins: s})
	}
	rank(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
