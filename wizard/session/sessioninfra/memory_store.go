package sessioninfra

import (
	"context"
	"sync"

	"github.com/jinhyuk-lee/resumate/pkg/kernel"
	"github.com/jinhyuk-lee/resumate/wizard/session"
)

// MemoryStore keeps sessions in process memory. This is the default backend:
// state is transient and lost on restart, which matches the product contract.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[kernel.SessionID]*session.Session
}

// NewMemoryStore creates an empty in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[kernel.SessionID]*session.Session),
	}
}

func (s *MemoryStore) Create(ctx context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess.Clone()
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id kernel.SessionID) (*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, session.ErrSessionNotFound().WithDetail("session_id", id.String())
	}
	return sess.Clone(), nil
}

func (s *MemoryStore) Save(ctx context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sess.ID]; !ok {
		return session.ErrSessionNotFound().WithDetail("session_id", sess.ID.String())
	}
	s.sessions[sess.ID] = sess.Clone()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id kernel.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
