package service

import (
	"sync"

	"github.com/jajotz/httpservice-golang/webclient"
)

// SessionRegistry keeps one pooled webclient per service name so TCP
// connections survive across factory invocations. Registrations are held for
// process lifetime; there is no eviction.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]webclient.Client
}

var defaultRegistry = NewSessionRegistry()

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]webclient.Client)}
}

// DefaultSessionRegistry returns the process-wide registry used by factories
// that do not inject their own.
func DefaultSessionRegistry() *SessionRegistry {
	return defaultRegistry
}

func (r *SessionRegistry) Get(name string) (webclient.Client, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[name]
	return session, ok
}

func (r *SessionRegistry) Set(name string, session webclient.Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[name] = session
}

// GetOrCreate returns the session registered under name, building and
// registering it with build on first use. The build runs under the registry
// lock, so concurrent first use yields exactly one session.
func (r *SessionRegistry) GetOrCreate(name string, build func() webclient.Client) webclient.Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session, ok := r.sessions[name]; ok {
		return session
	}

	session := build()
	r.sessions[name] = session
	return session
}
