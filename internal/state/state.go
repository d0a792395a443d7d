// Package state provides thread-safe state management for the application.
package state

import (
	"sync"
	"time"

	"github.com/litescript/ls-skybox/internal/astro"
	"github.com/litescript/ls-skybox/internal/logging"
)

// EventType represents the type of session event.
type EventType string

const (
	EventLoaded           EventType = "LOADED"
	EventProjectionFailed EventType = "PROJECTION_FAILED"
	EventFocus            EventType = "FOCUS"
)

// Event represents a change in the session.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Star      string    `json:"star,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}

// StarEntry is a catalog star with its cached projection.
type StarEntry struct {
	Star       astro.Star
	Projection astro.Projection
	Err        error
}

// OK reports whether the projection succeeded.
func (e StarEntry) OK() bool {
	return e.Err == nil
}

// Manager handles all shared application state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	entries  []StarEntry
	focus    int
	loadedAt time.Time

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	logger *logging.Logger
	now    func() time.Time
}

// Config holds configuration for the state manager.
type Config struct {
	MaxEvents int
	Logger    *logging.Logger
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxEvents: 50,
		Logger:    logging.Discard(),
	}
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Manager{
		maxEvents: maxEvents,
		events:    make([]Event, 0, maxEvents),
		logger:    logger,
		now:       time.Now,
	}
}

// Load replaces the catalog and projects every star. Stars that fail to
// project are kept with their error. Focus resets to the first star.
func (m *Manager) Load(cat astro.StarCatalog) {
	entries := make([]StarEntry, 0, len(cat.Stars))
	failed := 0
	for _, star := range cat.Stars {
		p, err := star.Project()
		if err != nil {
			failed++
		}
		entries = append(entries, StarEntry{Star: star, Projection: p, Err: err})
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = entries
	m.focus = 0
	m.loadedAt = m.now()

	for _, e := range entries {
		if e.Err != nil {
			m.logger.Warn("Star %s: %v", e.Star.Name, e.Err)
			m.addEvent(Event{
				Type:      EventProjectionFailed,
				Timestamp: m.loadedAt,
				Star:      e.Star.Name,
				Detail:    e.Err.Error(),
			})
		}
	}
	m.addEvent(Event{Type: EventLoaded, Timestamp: m.loadedAt})
	m.logger.Info("Loaded %d stars (%d failed)", len(entries), failed)
}

// SetFocus focuses the star at index i. It reports false if i is out of
// range, leaving the focus unchanged.
func (m *Manager) SetFocus(i int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i < 0 || i >= len(m.entries) {
		return false
	}
	m.setFocusLocked(i)
	return true
}

// MoveFocus moves the focus by delta, clamped to the catalog.
func (m *Manager) MoveFocus(delta int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.entries) == 0 {
		return
	}
	i := m.focus + delta
	if i < 0 {
		i = 0
	}
	if i >= len(m.entries) {
		i = len(m.entries) - 1
	}
	m.setFocusLocked(i)
}

// FocusByName focuses the named star.
func (m *Manager) FocusByName(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, e := range m.entries {
		if e.Star.Name == name {
			m.setFocusLocked(i)
			return true
		}
	}
	return false
}

func (m *Manager) setFocusLocked(i int) {
	if i == m.focus {
		return
	}
	m.focus = i
	m.addEvent(Event{
		Type:      EventFocus,
		Timestamp: m.now(),
		Star:      m.entries[i].Star.Name,
	})
	m.logger.Debug("Focus -> %s", m.entries[i].Star.Name)
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Stars    []StarEntry
	Focus    int
	LoadedAt time.Time
	Events   []Event
}

// Focused returns the focused entry, if any.
func (s Snapshot) Focused() (StarEntry, bool) {
	if s.Focus < 0 || s.Focus >= len(s.Stars) {
		return StarEntry{}, false
	}
	return s.Stars[s.Focus], true
}

// Failed returns the number of stars whose projection failed.
func (s Snapshot) Failed() int {
	n := 0
	for _, e := range s.Stars {
		if e.Err != nil {
			n++
		}
	}
	return n
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stars := make([]StarEntry, len(m.entries))
	copy(stars, m.entries)

	return Snapshot{
		Stars:    stars,
		Focus:    m.focus,
		LoadedAt: m.loadedAt,
		Events:   m.getEventsOrdered(),
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	// If buffer isn't full yet, just copy
	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// HasData returns true once a catalog has been loaded.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return !m.loadedAt.IsZero()
}
