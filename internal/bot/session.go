package bot

import "sync"

// Step marks where a chat is inside a multi-message conversation.
type Step int

const (
	StepNone Step = iota
	// Admin upload flow: waiting for the movie video, then for its number.
	StepAwaitVideo
	StepAwaitNumber
	// User flows entered from inline buttons.
	StepAwaitReview
	StepAwaitReminder
)

// Session is the per-user conversation state. Process-local, lost on
// restart, same as the original in-memory FSM storage.
type Session struct {
	Step    Step
	MovieID int
	FileID  string
}

// SessionStore keeps one Session per Telegram user ID.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]Session)}
}

// Get returns the session for a user, zero valued when none exists.
func (s *SessionStore) Get(userID int64) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[userID]
}

// Set replaces the session for a user.
func (s *SessionStore) Set(userID int64, sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sess
}

// Clear drops the session for a user.
func (s *SessionStore) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
