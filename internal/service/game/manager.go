package game

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// SessionManager tracks live sessions by ID so transports can route
// operations and background cleanup can prune abandoned games.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	searchDepth int
	recorder    Recorder
	notifier    Notifier
	log         *zap.SugaredLogger
}

func NewSessionManager(searchDepth int, recorder Recorder, notifier Notifier, log *zap.SugaredLogger) *SessionManager {
	return &SessionManager{
		sessions:    make(map[string]*Session),
		searchDepth: searchDepth,
		recorder:    recorder,
		notifier:    notifier,
		log:         log,
	}
}

// CreateSession registers a fresh Idle session.
func (sm *SessionManager) CreateSession() *Session {
	session := NewSession(sm.searchDepth, sm.recorder, sm.notifier, sm.log)

	sm.mu.Lock()
	sm.sessions[session.ID] = session
	sm.mu.Unlock()

	sm.log.Infow("session created", "session", session.ID)
	return session
}

func (sm *SessionManager) GetSession(id string) (*Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	session, exists := sm.sessions[id]
	return session, exists
}

func (sm *SessionManager) RemoveSession(id string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if _, exists := sm.sessions[id]; exists {
		delete(sm.sessions, id)
		sm.log.Infow("session removed", "session", id)
	}
}

// ActiveCount reports how many sessions are registered.
func (sm *SessionManager) ActiveCount() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// CleanupStaleSessions drops finished sessions idle longer than
// finishedAfter and unfinished ones idle longer than activeAfter.
func (sm *SessionManager) CleanupStaleSessions(finishedAfter, activeAfter time.Duration) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	count := 0
	now := time.Now()
	for id, session := range sm.sessions {
		idle := now.Sub(session.LastActive())
		if session.Finished() {
			if idle > finishedAfter {
				delete(sm.sessions, id)
				count++
			}
		} else if idle > activeAfter {
			delete(sm.sessions, id)
			count++
		}
	}

	if count > 0 {
		sm.log.Infow("removed stale sessions", "count", count)
	}
	return count
}
