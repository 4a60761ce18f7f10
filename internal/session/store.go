package session

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-view/internal/config"

	"github.com/dgraph-io/ristretto"
)

var ErrNotStored = errors.New("session value was not admitted by the cache")

// Manager keeps session-scoped values in a ristretto cache. Every entry costs 1
// and expires after the session TTL; each write refreshes the expiry.
type Manager struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewManager creates the session cache
func NewManager(cfg config.SessionConfig) (*Manager, error) {
	counters := cfg.CacheCounters
	if counters <= 0 {
		counters = 10000
	}
	maxCost := cfg.CacheMaxCost
	if maxCost <= 0 {
		maxCost = 1000
	}

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        counters,
		MaxCost:            maxCost,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session cache: %w", err)
	}

	return &Manager{cache: cache, ttl: cfg.TTL}, nil
}

// Value returns the value stored under key for the session
func (m *Manager) Value(sessionID, key string) (interface{}, bool) {
	return m.cache.Get(cacheKey(sessionID, key))
}

// SetValue stores value under key for the session. The write is visible to
// the next Value call once it returns.
func (m *Manager) SetValue(sessionID, key string, value interface{}) error {
	if !m.cache.SetWithTTL(cacheKey(sessionID, key), value, 1, m.ttl) {
		return ErrNotStored
	}
	m.cache.Wait()
	return nil
}

// DeleteValue removes key for the session
func (m *Manager) DeleteValue(sessionID, key string) {
	m.cache.Del(cacheKey(sessionID, key))
}

// Scope returns byte storage bound to one session, for persisted filter state
func (m *Manager) Scope(sessionID string) *Store {
	return &Store{manager: m, sessionID: sessionID}
}

// Close stops the cache's background goroutines
func (m *Manager) Close() {
	m.cache.Close()
}

func cacheKey(sessionID, key string) string {
	return sessionID + ":" + key
}

// Store is the byte-valued storage of a single session
type Store struct {
	manager   *Manager
	sessionID string
}

// Get returns a copy of the stored bytes
func (s *Store) Get(key string) ([]byte, bool) {
	value, ok := s.manager.Value(s.sessionID, key)
	if !ok {
		return nil, false
	}

	data, ok := value.([]byte)
	if !ok {
		slog.Warn("Unexpected session value type", "key", key)
		return nil, false
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, true
}

func (s *Store) Set(key string, value []byte) error {
	data := make([]byte, len(value))
	copy(data, value)
	return s.manager.SetValue(s.sessionID, key, data)
}

func (s *Store) Delete(key string) {
	s.manager.DeleteValue(s.sessionID, key)
}
