package web

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/Dev-Moura/portfolio/internal/view"
)

// ErrViewNotFound is returned for ids that were never mounted or have expired.
var ErrViewNotFound = errors.New("view not found")

// Root is the HTML root marker: the dark class on the #app element.
type Root struct {
	dark atomic.Bool
}

// SetDarkPresentation implements view.RootMarker.
func (r *Root) SetDarkPresentation(on bool) {
	r.dark.Store(on)
}

// Class returns the class attribute value for the root element.
func (r *Root) Class() string {
	if r.dark.Load() {
		return "dark"
	}
	return ""
}

// Mounted is a live view together with its root marker.
type Mounted struct {
	ID   string
	View *view.View
	Root *Root

	lastSeen atomic.Int64 // unix nanos
}

func (m *Mounted) touch(now time.Time) {
	m.lastSeen.Store(now.UnixNano())
}

func (m *Mounted) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, m.lastSeen.Load()))
}

// Store keeps the views mounted by page loads. A view that has not been
// used for longer than the TTL counts as closed and is dropped.
type Store struct {
	mu    sync.Mutex
	views map[string]*Mounted
	ttl   time.Duration
	now   func() time.Time
}

// NewStore creates an empty store with the given idle TTL.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		views: make(map[string]*Mounted),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Detached mounts a view that no store holds. It has no id and is used
// for one-shot renders.
func Detached() *Mounted {
	root := &Root{}
	return &Mounted{
		View: view.Mount(root),
		Root: root,
	}
}

// Mount creates a view in its default state under a fresh id.
func (s *Store) Mount() *Mounted {
	m := Detached()
	m.ID = uuid.NewString()
	m.touch(s.now())

	s.mu.Lock()
	s.views[m.ID] = m
	s.mu.Unlock()
	return m
}

// Get returns the live view for id and marks it as used.
func (s *Store) Get(id string) (*Mounted, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrViewNotFound
	}

	now := s.now()

	s.mu.Lock()
	m, ok := s.views[id]
	if ok && m.idleSince(now) > s.ttl {
		delete(s.views, id)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return nil, ErrViewNotFound
	}
	m.touch(now)
	return m, nil
}

// Len returns the number of views currently held, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.views)
}

// Sweep drops expired views and returns how many were removed.
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, m := range s.views {
		if m.idleSince(now) > s.ttl {
			delete(s.views, id)
			removed++
		}
	}
	return removed
}

// Run sweeps on every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n := s.Sweep()
			if onSweep != nil && n > 0 {
				onSweep(n)
			}
		}
	}
}
