package sessioning

import (
	"sync"
	"time"

	"github.com/vfg2006/ads-analyzer-api/internal/domain"
)

// Store guarda as sessões ativas em memória. Nada é persistido em disco:
// reiniciar o serviço invalida todas as sessões.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*domain.Session),
	}
}

func (s *Store) Put(session *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
}

func (s *Store) Get(id string) (*domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	return session, ok
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return false
	}

	session.Destroy()
	delete(s.sessions, id)
	return true
}

// DeleteExpired remove as sessões vencidas e retorna quantas foram removidas
func (s *Store) DeleteExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.Expired(now) {
			session.Destroy()
			delete(s.sessions, id)
			removed++
		}
	}

	return removed
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
