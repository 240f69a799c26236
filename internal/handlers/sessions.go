// SPDX-License-Identifier: MIT
package handlers

import (
	"sync"

	"github.com/thatcatcamp/huekit/internal/designer"
	"github.com/thatcatcamp/huekit/internal/themes"
)

// sessionStore keeps one designer session per project name in memory.
// Sessions do not survive a restart; the applied inputs do, in the database.
type sessionStore struct {
	mu       sync.Mutex
	gen      designer.Generator
	opts     themes.Options
	sessions map[string]*designer.Session
}

func newSessionStore(gen designer.Generator, opts themes.Options) *sessionStore {
	return &sessionStore{gen: gen, opts: opts, sessions: make(map[string]*designer.Session)}
}

// get returns the session for name, creating it from applied if missing
func (s *sessionStore) get(name string, applied designer.Inputs) *designer.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[name]; ok {
		return sess
	}
	sess := designer.NewSession(s.gen, s.opts)
	sess.Restore(applied)
	s.sessions[name] = sess
	return sess
}

func (s *sessionStore) drop(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, name)
}
