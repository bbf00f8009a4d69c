// internal/scores/memory.go
//
// In-memory implementation of the Store interface.
// Used when no database is configured: tallies live for the process lifetime.
//
// Characteristics:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Duplicate round IDs are ignored, matching the SQLite store.

package scores

import (
	"context"
	"sync"
)

type memory struct {
	mu      sync.RWMutex
	players map[string]*PlayerStats
	rounds  map[string]struct{}
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{
		players: make(map[string]*PlayerStats),
		rounds:  make(map[string]struct{}),
	}
}

func (m *memory) Record(ctx context.Context, r Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, dup := m.rounds[r.RoundID]; dup && r.RoundID != "" {
		return nil
	}
	m.rounds[r.RoundID] = struct{}{}

	p, ok := m.players[r.Player]
	if !ok {
		p = &PlayerStats{Player: r.Player}
		m.players[r.Player] = p
	}
	p.apply(r.Won)
	return nil
}

func (m *memory) Stats(ctx context.Context, player string) (PlayerStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.players[player]; ok {
		return *p, nil
	}
	return PlayerStats{}, ErrNotFound
}

func (m *memory) Top(ctx context.Context, limit int) ([]PlayerStats, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	m.mu.RLock()
	out := make([]PlayerStats, 0, len(m.players))
	for _, p := range m.players {
		out = append(out, *p)
	}
	m.mu.RUnlock()

	rank(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memory) Close() error { return nil }
