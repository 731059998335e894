package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jeevanlakshya/plan733/internal/config"
	"github.com/jeevanlakshya/plan733/internal/domain"
)

type handoffEntry struct {
	payload domain.GoalPlanPayload
	expires time.Time
}

// HandoffStore keeps goal payloads in memory until the confirmation step
// collects them. Each token can be taken once.
type HandoffStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]handoffEntry
	now     func() time.Time
}

// NewHandoffStore creates a store whose entries expire after ttl. A ttl of
// zero or less uses config.DefaultHandoffTTL.
func NewHandoffStore(ttl time.Duration) *HandoffStore {
	if ttl <= 0 {
		ttl = config.DefaultHandoffTTL
	}
	return &HandoffStore{
		ttl:     ttl,
		entries: make(map[string]handoffEntry),
		now:     time.Now,
	}
}

// Put stores a payload and returns its token and expiry
func (s *HandoffStore) Put(p domain.GoalPlanPayload) (string, time.Time, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate hand-off token: %w", err)
	}
	token := id.String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	expires := s.now().Add(s.ttl)
	s.entries[token] = handoffEntry{payload: p, expires: expires}
	return token, expires, nil
}

// Take returns and removes the payload for a token. Expired and unknown
// tokens both report false.
func (s *HandoffStore) Take(token string) (domain.GoalPlanPayload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[token]
	if !ok {
		return domain.GoalPlanPayload{}, false
	}
	delete(s.entries, token)
	if !s.now().Before(e.expires) {
		return domain.GoalPlanPayload{}, false
	}
	return e.payload, true
}

// Len returns the number of live entries
func (s *HandoffStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	return len(s.entries)
}

func (s *HandoffStore) sweepLocked() {
	now := s.now()
	for token, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, token)
		}
	}
}
