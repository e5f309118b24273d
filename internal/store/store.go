package store

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/polyglotfm/plx/internal/models"
)

// Store owns the application state tree. It is constructed once at startup
// and passed by reference to everything that reads or dispatches; there is no
// package-level singleton.
//
// Dispatches are serialized by a mutex, so each action is applied atomically
// against the state it observed. No ordering is imposed between concurrent
// callers: the last dispatch wins, matching the documented behavior of the
// product's web client.
type Store struct {
	mu          sync.Mutex
	state       models.AppState
	logger      *log.Logger
	subscribers map[int]chan models.AppState
	nextSubID   int
}

// New creates a Store holding the initial empty state.
// The logger may be nil, in which case dispatches are not logged.
func New(logger *log.Logger) *Store {
	return &Store{
		state:       models.InitialState(),
		logger:      logger,
		subscribers: make(map[int]chan models.AppState),
	}
}

// Dispatch applies the action through the reducer and notifies subscribers
// with the resulting snapshot.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	snapshot := s.state.Clone()
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Debug("dispatched", "action", action.Kind.String())
	}

	s.notify(snapshot)
}

// State returns a snapshot of the current state. Mutating the snapshot has no
// effect on the store.
func (s *Store) State() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers for state snapshots after each dispatch. The returned
// cancel function unregisters and closes the channel.
//
// Delivery is best-effort: a subscriber that falls behind misses intermediate
// snapshots rather than blocking dispatch.
func (s *Store) Subscribe() (<-chan models.AppState, func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	ch := make(chan models.AppState, 8)
	s.subscribers[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if sub, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(sub)
		}
		s.mu.Unlock()
	}

	return ch, cancel
}

// notify fans the snapshot out to subscribers without blocking.
func (s *Store) notify(snapshot models.AppState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.subscribers {
		select {
		case ch <- snapshot:
		default:
			// Subscriber is behind, skip this update
		}
	}
}
