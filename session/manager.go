package session

import (
	"sync"
	"time"
)

type key struct {
	userID string
	family Family
}

// Manager is the session table: an explicit mapping from (user, family) to
// the in-flight accumulator, with expiry sweeping for abandoned sessions.
// Map access is guarded; session contents carry no lock of their own and
// must only be touched from serialized event dispatch.
type Manager struct {
	mu       sync.RWMutex
	sessions map[key]*Session
}

// NewManager creates an empty session table.
func NewManager() *Manager {
	return &Manager{sessions: make(map[key]*Session)}
}

// Start creates a session for (user, family) in the given initial state.
// An existing session for the same key is replaced outright; there is no
// merging of accumulators.
func (m *Manager) Start(userID, channelID string, family Family, state State) *Session {
	now := time.Now()
	sess := &Session{
		UserID:    userID,
		ChannelID: channelID,
		Family:    family,
		State:     state,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.sessions[key{userID, family}] = sess
	m.mu.Unlock()
	return sess
}

// Get returns the session for (user, family), if any.
func (m *Manager) Get(userID string, family Family) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[key{userID, family}]
	return sess, ok
}

// Active returns the user's most recently touched session across all
// families. Inbound free-form messages are routed to it.
func (m *Manager) Active(userID string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var latest *Session
	for k, sess := range m.sessions {
		if k.userID != userID {
			continue
		}
		if latest == nil || sess.UpdatedAt.After(latest.UpdatedAt) {
			latest = sess
		}
	}
	return latest, latest != nil
}

// Touch refreshes the session's idle timer.
func (m *Manager) Touch(sess *Session) {
	m.mu.Lock()
	sess.UpdatedAt = time.Now()
	m.mu.Unlock()
}

// End discards the session for (user, family). Discarding is synchronous:
// once End returns no accumulated state survives.
func (m *Manager) End(userID string, family Family) {
	m.mu.Lock()
	delete(m.sessions, key{userID, family})
	m.mu.Unlock()
}

// Cancel discards the user's active session and reports whether one
// existed.
func (m *Manager) Cancel(userID string) bool {
	sess, ok := m.Active(userID)
	if !ok {
		return false
	}
	m.End(userID, sess.Family)
	return true
}

// SweepExpired discards sessions idle for longer than maxIdle and returns
// how many were removed.
func (m *Manager) SweepExpired(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for k, sess := range m.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(m.sessions, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of in-flight sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
