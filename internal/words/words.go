// internal/words/words.go
//
// Word corpus access for the game engine.
//
// Responsibilities:
//   - Read a line-delimited word list from a file, or fall back to the embedded default.
//   - Filter the corpus down to the candidates of one difficulty tier.
//
// Corpus rules:
//   • One word per line; surrounding whitespace (including a trailing CR) is trimmed.
//   • Blank lines and lines starting with '#' are skipped.
//   • Case is kept as written; the engine compares letters case-insensitively.
//
// The corpus is re-read on every Candidates call. Nothing is cached between calls.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/hangman/assets"
)

// ErrSourceUnavailable is returned when the backing word list cannot be read.
var ErrSourceUnavailable = errors.New("words: source unavailable")

// Corpus supplies the raw lines of a word list.
type Corpus interface {
	Lines() ([]string, error)
}

// FileCorpus reads a word list from disk.
type FileCorpus struct {
	Path string
}

// Lines opens Path and returns its words.
// A missing or unreadable file yields ErrSourceUnavailable.
func (c FileCorpus) Lines() ([]string, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()
	out, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrSourceUnavailable, c.Path, err)
	}
	return out, nil
}

func (c FileCorpus) String() string { return c.Path }

// EmbeddedCorpus serves the word list compiled into the binary.
type EmbeddedCorpus struct{}

func (EmbeddedCorpus) Lines() ([]string, error) {
	f, err := assets.FS.Open(assets.WordsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: embedded list: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()
	out, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("%w: embedded list: %w", ErrSourceUnavailable, err)
	}
	return out, nil
}

func (EmbeddedCorpus) String() string { return "<embedded>" }

// StaticCorpus is an in-memory word list, handy for tests and fixed word sets.
type StaticCorpus []string

func (c StaticCorpus) Lines() ([]string, error) {
	return append([]string(nil), c...), nil
}

// CorpusFor returns a FileCorpus for path, or the embedded corpus when path is empty.
func CorpusFor(path string) Corpus {
	if strings.TrimSpace(path) == "" {
		return EmbeddedCorpus{}
	}
	return FileCorpus{Path: path}
}

// readLines splits r into trimmed, non-blank, non-comment lines.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// Source answers "which words belong to this tier" over a corpus.
type Source struct {
	corpus Corpus
	policy Policy
}

// NewSource binds a corpus to a tier policy. A nil policy means DefaultPolicy.
func NewSource(c Corpus, p Policy) *Source {
	if p == nil {
		p = DefaultPolicy()
	}
	return &Source{corpus: c, policy: p}
}

// Candidates reads the corpus and returns the words matching tier, in corpus order.
// Corpus errors are returned unchanged; an empty result is not an error.
func (s *Source) Candidates(tier Tier) ([]string, error) {
	lines, err := s.corpus.Lines()
	if err != nil {
		return nil, err
	}
	return s.policy.Candidates(tier, lines)
}

// Policy returns the tier bounds this source filters with.
func (s *Source) Policy() Policy { return s.policy }

// Stats returns the candidate count per tier, for diagnostics.
func (s *Source) Stats() (map[Tier]int, error) {
	lines, err := s.corpus.Lines()
	if err != nil {
		return nil, err
	}
	out := make(map[Tier]int, len(Tiers))
	for _, t := range Tiers {
		c, err := s.policy.Candidates(t, lines)
		if err != nil {
			return nil, err
		}
		out[t] = len(c)
	}
	return out, nil
}
