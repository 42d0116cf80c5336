// Package session keeps one catalog controller per browsing session.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/catalog"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session serializes access to its controller.
type Session struct {
	ID string

	mu  sync.Mutex
	ctl *catalog.Controller
}

// Do runs fn with exclusive access to the session's controller.
func (s *Session) Do(fn func(ctl *catalog.Controller) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.ctl)
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

type Registry struct {
	catalog  *catalog.Catalog
	pageSize int
	ttl      time.Duration
	logger   logger.ZapLogger
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

// NewRegistry fails only when c is nil. A ttl of zero keeps sessions until
// the process exits.
func NewRegistry(c *catalog.Catalog, pageSize int, ttl time.Duration, log logger.ZapLogger) (*Registry, error) {
	if c == nil {
		return nil, catalog.ErrNilCatalog
	}
	return &Registry{
		catalog:  c,
		pageSize: pageSize,
		ttl:      ttl,
		logger:   log,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}, nil
}

// Create starts a session on page 1 of the full catalog.
func (r *Registry) Create() (*Session, error) {
	return r.Restore(uuid.New().String(), nil)
}

// Get returns the session and marks it as used.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.session, true
}

// Restore returns the live session id, or creates it and replays snap onto
// the new controller. A nil snap starts from the full catalog.
func (r *Registry) Restore(id string, snap *catalog.ViewSnapshot) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.sessions[id]; ok {
		e.lastSeen = r.now()
		return e.session, nil
	}

	ctl, err := catalog.NewController(r.catalog, r.pageSize)
	if err != nil {
		return nil, err
	}
	if snap != nil {
		ctl.Restore(*snap)
	}

	s := &Session{ID: id, ctl: ctl}
	r.sessions[id] = &entry{session: s, lastSeen: r.now()}
	metrics.SessionsActive.Set(float64(len(r.sessions)))
	return s, nil
}

func (r *Registry) Catalog() *catalog.Catalog {
	return r.catalog
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than the ttl and returns how many
// were dropped.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	dropped := 0
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			dropped++
		}
	}
	metrics.SessionsActive.Set(float64(len(r.sessions)))
	return dropped
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Debug("expired idle sessions", zap.Int("count", n), zap.Int("remaining", r.Len()))
			}
		}
	}
}
