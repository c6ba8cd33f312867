package feed_usecase

import (
	"sync"

	"github.com/google/uuid"

	"unmute/domain"
)

// FeedSession is the mutable state of one open feed view. One fetch may be
// in flight per session at a time; sessions for different views are fully
// independent. Feed state is not durable across restarts.
type FeedSession struct {
	ID       uuid.UUID
	Viewer   domain.ViewerContext
	FeedType domain.FeedType
	Limit    int

	mu      sync.Mutex
	offset  int
	items   []*domain.ContentItem
	hasMore bool
	loading bool
	err     error
	closed  bool

	// generation increments on refresh and close so a fetch that was in
	// flight across either discards its result instead of mutating the
	// replaced state.
	generation uint64
}

func newFeedSession(viewer domain.ViewerContext, feedType domain.FeedType, limit int) *FeedSession {
	return &FeedSession{
		ID:       uuid.New(),
		Viewer:   viewer,
		FeedType: feedType,
		Limit:    limit,
		hasMore:  true,
	}
}

// Items returns the accumulated timeline.
func (s *FeedSession) Items() []*domain.ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*domain.ContentItem(nil), s.items...)
}

// Offset returns the current pagination cursor.
func (s *FeedSession) Offset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offset
}

// HasMore reports whether another page is expected to exist.
func (s *FeedSession) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasMore
}

// Loading reports whether a fetch is in flight.
func (s *FeedSession) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the error of the most recent failed fetch, if any. It is
// cleared by the next successful fetch.
func (s *FeedSession) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// SessionSnapshot is the explicit, caller-held form of session state, for
// hosts that want to resume a feed view across reloads.
type SessionSnapshot struct {
	Viewer   domain.ViewerContext  `json:"viewer"`
	FeedType domain.FeedType       `json:"feed_type"`
	Limit    int                   `json:"limit"`
	Offset   int                   `json:"offset"`
	Items    []*domain.ContentItem `json:"items"`
	HasMore  bool                  `json:"has_more"`
}

// Snapshot captures the session state. In-flight status and errors are
// deliberately not part of the snapshot.
func (s *FeedSession) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionSnapshot{
		Viewer:   s.Viewer,
		FeedType: s.FeedType,
		Limit:    s.Limit,
		Offset:   s.offset,
		Items:    append([]*domain.ContentItem(nil), s.items...),
		HasMore:  s.hasMore,
	}
}

// RestoreSession rebuilds a session from a snapshot under a fresh ID.
func RestoreSession(snapshot SessionSnapshot) *FeedSession {
	s := newFeedSession(snapshot.Viewer, snapshot.FeedType, snapshot.Limit)
	s.offset = snapshot.Offset
	s.items = append([]*domain.ContentItem(nil), snapshot.Items...)
	s.hasMore = snapshot.HasMore
	return s
}

// SessionStore holds the live sessions of this process. Sessions are
// independent; the store itself is the only shared structure.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*FeedSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[uuid.UUID]*FeedSession)}
}

func (st *SessionStore) Put(session *FeedSession) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[session.ID] = session
}

func (st *SessionStore) Get(id uuid.UUID) (*FeedSession, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	session, ok := st.sessions[id]
	return session, ok
}

func (st *SessionStore) Delete(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}
