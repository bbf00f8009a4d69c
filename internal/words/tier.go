package words

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tier is a difficulty level. Each tier maps to a word-length interval.
type Tier int

const (
	Easy Tier = iota + 1
	Medium
	Hard
)

// Default length bounds, in letters, per tier.
const (
	EasyMin   = 1
	EasyMax   = 5
	MediumMin = 6
	MediumMax = 7
	HardMin   = 8
	HardMax   = 10
)

// ErrUnknownTier is returned for a tier outside Easy..Hard or an unparsable name.
var ErrUnknownTier = errors.New("words: unknown difficulty tier")

// Tiers lists every tier in menu order.
var Tiers = []Tier{Easy, Medium, Hard}

func (t Tier) String() string {
	switch t {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool { return t >= Easy && t <= Hard }

// ParseTier accepts the menu numbers "1".."3" or the names easy/medium/hard
// in any case.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "easy", "e":
		return Easy, nil
	case "2", "medium", "m":
		return Medium, nil
	case "3", "hard", "h":
		return Hard, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

// Bounds is an inclusive word-length interval.
type Bounds struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Contains reports whether a word's letter count falls inside b.
func (b Bounds) Contains(word string) bool {
	n := utf8.RuneCountInString(word)
	return n >= b.Min && n <= b.Max
}

// Policy maps every tier to its length interval.
type Policy map[Tier]Bounds

// DefaultPolicy returns the standard Easy/Medium/Hard bands.
func DefaultPolicy() Policy {
	return Policy{
		Easy:   {Min: EasyMin, Max: EasyMax},
		Medium: {Min: MediumMin, Max: MediumMax},
		Hard:   {Min: HardMin, Max: HardMax},
	}
}

// Validate rejects missing, inverted or overlapping intervals.
func (p Policy) Validate() error {
	var prev Bounds
	for i, t := range Tiers {
		b, ok := p[t]
		if !ok {
			return fmt.Errorf("words: no bounds for tier %s", t)
		}
		if b.Min < 1 || b.Max < b.Min {
			return fmt.Errorf("words: invalid bounds for tier %s: [%d, %d]", t, b.Min, b.Max)
		}
		if i > 0 && b.Min <= prev.Max {
			return fmt.Errorf("words: tier %s overlaps %s", t, Tiers[i-1])
		}
		prev = b
	}
	return nil
}

// Candidates filters lines down to the words inside tier's interval,
// preserving corpus order. Lines without a letter are never candidates.
// An empty result is not an error.
func (p Policy) Candidates(tier Tier, lines []string) ([]string, error) {
	b, ok := p[tier]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTier, tier)
	}
	out := make([]string, 0, len(lines))
	for _, w := range lines {
		if b.Contains(w) && hasLetter(w) {
			out = append(out, w)
		}
	}
	return out, nil
}

func hasLetter(w string) bool {
	return strings.IndexFunc(w, unicode.IsLetter) >= 0
}

// Candidates filters lines with the default policy.
func Candidates(tier Tier, lines []string) ([]string, error) {
	return DefaultPolicy().Candidates(tier, lines)
}
