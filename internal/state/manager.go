// Package state owns the picker's current color and the list of saved colors.
//
// A Manager is created once per session and handed to whatever needs to read
// or change it. Requests carrying an invalid color are ignored rather than
// reported; storage failures are logged and never undo in-memory changes.
// A Manager is not safe for concurrent use.
package state

import (
	"encoding/json"
	"slices"

	"github.com/tliron/commonlog"

	"github.com/balkashynov/huepick/internal/color"
)

const (
	DefaultColor = "#3b82f6"
	MaxSaved     = 20
	StorageKey   = "savedColors"
)

// State is a snapshot of the Manager's fields.
type State struct {
	Current string
	Saved   []string
}

// Manager is the single writer of the color state.
type Manager struct {
	current string
	saved   []string

	store Store
	key   string
	log   commonlog.Logger

	subscribers map[int]func(State)
	nextSub     int
}

// Option configures a Manager.
type Option func(*Manager)

// WithDefaultColor sets the starting current color. Invalid colors are ignored.
func WithDefaultColor(c string) Option {
	return func(m *Manager) {
		if color.IsValid(c) {
			m.current = c
		}
	}
}

// WithKey changes the storage key the saved list is written under.
func WithKey(key string) Option {
	return func(m *Manager) {
		if key != "" {
			m.key = key
		}
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// New creates a Manager with the default current color and no saved colors.
// Call Restore to load the saved list from store.
func New(store Store, opts ...Option) *Manager {
	m := &Manager{
		current:     DefaultColor,
		saved:       []string{},
		store:       store,
		key:         StorageKey,
		log:         commonlog.GetLogger("huepick.state"),
		subscribers: make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Current returns the current color exactly as it was entered.
func (m *Manager) Current() string {
	return m.current
}

// Saved returns a copy of the saved colors, oldest first.
func (m *Manager) Saved() []string {
	return slices.Clone(m.saved)
}

// Snapshot returns a copy of the whole state.
func (m *Manager) Snapshot() State {
	return State{Current: m.current, Saved: m.Saved()}
}

// IsSaved reports whether c is in the saved list (exact string match).
func (m *Manager) IsSaved(c string) bool {
	return slices.Contains(m.saved, c)
}

// Subscribe registers fn to be called after every state change.
// The returned function removes the registration.
func (m *Manager) Subscribe(fn func(State)) (unsubscribe func()) {
	id := m.nextSub
	m.nextSub++
	m.subscribers[id] = fn
	return func() { delete(m.subscribers, id) }
}

// SetCurrentColor replaces the current color. Invalid input is ignored.
func (m *Manager) SetCurrentColor(input string) {
	if !color.IsValid(input) || input == m.current {
		return
	}
	m.current = input
	m.notify()
}

// AddColor appends input to the saved list unless it is invalid or already
// present. When the list grows past MaxSaved the oldest entry is evicted.
func (m *Manager) AddColor(input string) {
	if !color.IsValid(input) || m.IsSaved(input) {
		return
	}
	saved := append(slices.Clone(m.saved), input)
	if len(saved) > MaxSaved {
		saved = saved[len(saved)-MaxSaved:]
	}
	m.replaceSaved(saved)
}

// RemoveColor deletes every occurrence of input from the saved list.
func (m *Manager) RemoveColor(input string) {
	if !m.IsSaved(input) {
		return
	}
	saved := slices.DeleteFunc(slices.Clone(m.saved), func(c string) bool { return c == input })
	m.replaceSaved(saved)
}

// ClearColors empties the saved list. The current color is untouched.
func (m *Manager) ClearColors() {
	if len(m.saved) == 0 {
		return
	}
	m.replaceSaved([]string{})
}

// Hydrate replaces the saved list with the valid entries of candidates,
// keeping their order, dropping repeats and stopping at MaxSaved.
// Entries are kept as given; shorthand is not expanded.
func (m *Manager) Hydrate(candidates []string) {
	saved := make([]string, 0, MaxSaved)
	for _, c := range candidates {
		if len(saved) == MaxSaved {
			break
		}
		if color.IsValid(c) && !slices.Contains(saved, c) {
			saved = append(saved, c)
		}
	}
	if slices.Equal(saved, m.saved) {
		return
	}
	m.replaceSaved(saved)
}

// Restore loads the saved list from the store. A missing, unreadable or
// malformed value leaves the list empty.
func (m *Manager) Restore() {
	raw, ok, err := m.store.Get(m.key)
	if err != nil {
		m.log.Errorf("failed to load saved colors: %s", err)
		return
	}
	if !ok || raw == "" {
		return
	}

	var values []any
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		m.log.Warningf("ignoring malformed saved colors %q: %s", raw, err)
		return
	}

	candidates := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			candidates = append(candidates, s)
		}
	}
	m.Hydrate(candidates)
}

func (m *Manager) replaceSaved(saved []string) {
	m.saved = saved
	m.persist()
	m.notify()
}

// persist writes the full saved list under the storage key. Failures are
// logged only; the in-memory list stays authoritative.
func (m *Manager) persist() {
	data, err := json.Marshal(m.saved)
	if err != nil {
		m.log.Errorf("failed to encode saved colors: %s", err)
		return
	}
	if err := m.store.Set(m.key, string(data)); err != nil {
		m.log.Errorf("failed to save colors: %s", err)
	}
}

func (m *Manager) notify() {
	if len(m.subscribers) == 0 {
		return
	}
	snap := m.Snapshot()
	ids := make([]int, 0, len(m.subscribers))
	for id := range m.subscribers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := m.subscribers[id]; ok {
			fn(snap)
		}
	}
}
