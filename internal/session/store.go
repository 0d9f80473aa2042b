package session

import (
	"sync"
	"time"

	"github.com/anyafi/anya/internal/core"
)

// maxHistory caps stored turns per user to avoid unbounded growth.
const maxHistory = 20

// Store is an in-process session store with a TTL. Sessions past their TTL
// are treated as absent and dropped lazily on the next read.
type Store struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]core.Session
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]core.Session),
		now:      time.Now,
	}
}

func (s *Store) Get(userID string) (core.Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[userID]
	s.mu.RUnlock()

	if !ok {
		return core.Session{}, false
	}
	if s.ttl > 0 && s.now().Sub(sess.LastActivity) > s.ttl {
		s.mu.Lock()
		delete(s.sessions, userID)
		s.mu.Unlock()
		return core.Session{}, false
	}
	return sess, true
}

func (s *Store) Put(userID string, sess core.Session) {
	sess.LastActivity = s.now()
	s.mu.Lock()
	s.sessions[userID] = sess
	s.mu.Unlock()
}

func (s *Store) AppendHistory(userID, role, content string) {
	sess, _ := s.Get(userID)
	sess.History = append(sess.History, core.Message{
		Role:      role,
		Content:   content,
		Timestamp: s.now().UTC(),
	})
	if len(sess.History) > maxHistory {
		sess.History = sess.History[len(sess.History)-maxHistory:]
	}
	s.Put(userID, sess)
}

// History returns the most recent turns, oldest first.
func (s *Store) History(userID string, limit int) []core.Message {
	sess, ok := s.Get(userID)
	if !ok || limit <= 0 {
		return nil
	}
	if len(sess.History) > limit {
		return sess.History[len(sess.History)-limit:]
	}
	return sess.History
}

func (s *Store) GetState(userID string) string {
	sess, _ := s.Get(userID)
	return sess.State
}

func (s *Store) SetState(userID, state string) {
	sess, _ := s.Get(userID)
	sess.State = state
	s.Put(userID, sess)
}
