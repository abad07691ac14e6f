package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/goliatone/go-regform/pkg/navigation"
	"github.com/goliatone/go-regform/pkg/registration"
)

// session is one visitor's navigation state. Handlers hold mu for the whole
// request so the router and engine see one dispatch at a time.
type session struct {
	mu     sync.Mutex
	id     string
	router *navigation.Router[*registration.Snapshot]
	engine *registration.Engine
}

func newSession(id string) *session {
	s := &session{id: id, router: navigation.NewRouter[*registration.Snapshot]()}
	s.router.OnEnter(navigation.Entry, func(navigation.View, *registration.Snapshot) {
		s.engine = registration.NewEngine(s.router)
	})
	s.engine = registration.NewEngine(s.router)
	return s
}

// mountEntry navigates to the entry view, which mounts a fresh engine.
func (s *session) mountEntry() error {
	return s.router.Redirect(navigation.Entry)
}

// SessionStore keeps sessions in memory with a sliding expiry.
type SessionStore struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewSessionStore creates a store whose sessions expire after ttl without
// use. Expired sessions are purged every cleanup interval.
func NewSessionStore(ttl, cleanup time.Duration) *SessionStore {
	return &SessionStore{cache: gocache.New(ttl, cleanup), ttl: ttl}
}

// Create registers a new session under a random id.
func (s *SessionStore) Create() *session {
	sess := newSession(uuid.NewString())
	s.cache.Set(sess.id, sess, gocache.DefaultExpiration)
	return sess
}

// Get returns the session for id and extends its expiry.
func (s *SessionStore) Get(id string) (*session, bool) {
	if id == "" {
		return nil, false
	}
	value, found := s.cache.Get(id)
	if !found {
		return nil, false
	}
	sess, ok := value.(*session)
	if !ok {
		return nil, false
	}
	s.cache.Set(id, sess, gocache.DefaultExpiration)
	return sess, true
}

// Len reports the number of stored sessions, including expired ones not yet
// purged.
func (s *SessionStore) Len() int {
	return s.cache.ItemCount()
}
