package drilldown

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/shubhamnexus/samparkmain-dashboard/models"
)

var ErrSessionNotFound = errors.New("drilldown: session not found")

// SessionStore keeps navigators keyed by session id. Sessions expire after
// ttl of inactivity; every Get refreshes the expiry.
type SessionStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewSessionStore(ttl, cleanup time.Duration) *SessionStore {
	return &SessionStore{
		cache: cache.New(ttl, cleanup),
		ttl:   ttl,
	}
}

// Create starts a navigator for the given state and stores it under a fresh
// session id.
func (s *SessionStore) Create(state string, overview models.StateOverview, seed uint64) (string, *Navigator) {
	id := uuid.NewString()
	nav := NewNavigator(state, overview, seed)
	s.cache.Set(id, nav, s.ttl)
	return id, nav
}

func (s *SessionStore) Get(id string) (*Navigator, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	nav := v.(*Navigator)
	// Replace fails when a concurrent Delete removed the entry, so a deleted
	// session is never stored again.
	if err := s.cache.Replace(id, nav, s.ttl); err != nil {
		return nil, ErrSessionNotFound
	}
	return nav, nil
}

func (s *SessionStore) Delete(id string) error {
	if _, ok := s.cache.Get(id); !ok {
		return ErrSessionNotFound
	}
	s.cache.Delete(id)
	return nil
}

// Count returns the number of live sessions, including expired ones not yet
// swept by the janitor.
func (s *SessionStore) Count() int {
	return s.cache.ItemCount()
}

// OnEvicted registers a callback run when a session expires or is deleted.
func (s *SessionStore) OnEvicted(fn func(id string)) {
	s.cache.OnEvicted(func(k string, _ interface{}) { fn(k) })
}
