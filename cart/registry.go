package cart

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrUnknownSession is returned for session ids the registry never opened,
// or whose cart has since been swept.
var ErrUnknownSession = errors.New("unknown cart session")

type session struct {
	mu       sync.Mutex
	cart     *MemoryStore
	dropped  bool
	lastSeen atomic.Int64 // unix nanos
}

// Registry hosts one cart per shopper session. Only sessions opened with
// Open are served. Access to a session's cart is serialised by that
// session's mutex, so each cart still sees a single writer at a time.
// Nothing is persisted.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*session

	now func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*session), now: time.Now}
}

// Open registers an empty cart for sessionID. Opening a live session keeps
// its cart.
func (r *Registry) Open(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[sessionID]; ok {
		return
	}
	s := &session{cart: NewMemoryStore()}
	s.lastSeen.Store(r.now().UnixNano())
	r.sessions[sessionID] = s
}

func (r *Registry) lookup(sessionID string) (*session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[sessionID]
	return s, ok
}

// With runs fn against the session's cart.
func (r *Registry) With(sessionID string, fn func(Store) Cart) (Cart, error) {
	s, ok := r.lookup(sessionID)
	if !ok {
		return Cart{}, ErrUnknownSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// swept while we waited
	if s.dropped {
		return Cart{}, ErrUnknownSession
	}
	s.lastSeen.Store(r.now().UnixNano())
	return fn(s.cart), nil
}

// Drop forgets a session and its cart.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	s, ok := r.sessions[sessionID]
	delete(r.sessions, sessionID)
	r.mu.Unlock()
	if ok {
		s.mu.Lock()
		s.dropped = true
		s.mu.Unlock()
	}
}

// Sweep drops every session untouched for longer than idle and reports
// how many went.
func (r *Registry) Sweep(idle time.Duration) int {
	cutoff := r.now().Add(-idle).UnixNano()

	r.mu.Lock()
	var stale []string
	for id, s := range r.sessions {
		if s.lastSeen.Load() < cutoff {
			stale = append(stale, id)
		}
	}
	r.mu.Unlock()

	for _, id := range stale {
		r.Drop(id)
	}
	return len(stale)
}

// Len reports how many sessions are open.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
