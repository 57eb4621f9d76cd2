package session

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/auditmind/agent/retriever"
)

type Service struct {
	retriever retriever.Retriever
	sessions  map[string]*Session
	mtx       sync.RWMutex
}

// CreateSession registers a session, minting a UUID when no id is
// given. Creating an already-known id returns the existing session.
func (s *Service) CreateSession(_ context.Context, id string) (*Session, error) {
	if len(strings.TrimSpace(id)) == 0 {
		id = uuid.NewString()
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if session, ok := s.sessions[id]; ok {
		return session, nil
	}

	session := &Session{
		retriever: s.retriever,
		id:        id,
	}

	s.sessions[id] = session

	return session, nil
}

func (s *Service) ListSessionIds(_ context.Context) []string {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

func (s *Service) GetSession(_ context.Context, id string) (*Session, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s not found", id)
	}

	return session, nil
}

func (s *Service) DeleteSession(_ context.Context, id string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	delete(s.sessions, id)
}

func New(retriever retriever.Retriever) *Service {
	return &Service{
		retriever: retriever,
		sessions:  map[string]*Session{},
		mtx:       sync.RWMutex{},
	}
}
