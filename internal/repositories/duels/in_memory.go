package duels

import (
	"context"
	"sync"
	"time"

	"github.com/siegecord/r6-bot-discord/internal/domain/duel"
	apperrors "github.com/siegecord/r6-bot-discord/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]*duel.Session
	ttl      time.Duration
	clock    TimeProvider
}

// InMemoryConfig holds configuration for the in-memory repository
type InMemoryConfig struct {
	// TTL bounds how long an unanswered challenge is kept. Zero means
	// sessions never expire.
	TTL time.Duration

	// TimeProvider is optional and defaults to the wall clock
	TimeProvider TimeProvider
}

// NewInMemoryRepository creates a new in-memory session repository
func NewInMemoryRepository(cfg *InMemoryConfig) Repository {
	if cfg == nil {
		cfg = &InMemoryConfig{}
	}

	clock := cfg.TimeProvider
	if clock == nil {
		clock = realTimeProvider{}
	}

	return &inMemoryRepository{
		sessions: make(map[string]*duel.Session),
		ttl:      cfg.TTL,
		clock:    clock,
	}
}

// Create stores a new session
func (r *inMemoryRepository) Create(ctx context.Context, session *duel.Session) error {
	if session == nil {
		return apperrors.Validation("session cannot be nil")
	}
	if session.ID == "" {
		return apperrors.Validation("session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()

	if _, exists := r.sessions[session.ID]; exists {
		return apperrors.AlreadyExistsf("session with ID %s already exists", session.ID)
	}

	// Store a copy to avoid external modifications
	sessionCopy := *session
	r.sessions[session.ID] = &sessionCopy

	return nil
}

// Take removes and returns a session
func (r *inMemoryRepository) Take(ctx context.Context, id string) (*duel.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, exists := r.sessions[id]
	if !exists {
		return nil, apperrors.NotFoundf("session not found: %s", id)
	}

	delete(r.sessions, id)

	if r.expired(session) {
		return nil, apperrors.NotFoundf("session not found: %s", id)
	}

	sessionCopy := *session
	return &sessionCopy, nil
}

// sweepLocked drops expired sessions. Called with the lock held on
// every Create so abandoned challenges cannot accumulate forever.
func (r *inMemoryRepository) sweepLocked() {
	if r.ttl <= 0 {
		return
	}
	for id, session := range r.sessions {
		if r.expired(session) {
			delete(r.sessions, id)
		}
	}
}

func (r *inMemoryRepository) expired(session *duel.Session) bool {
	if r.ttl <= 0 {
		return false
	}
	return r.clock.Now().Sub(session.CreatedAt) > r.ttl
}
