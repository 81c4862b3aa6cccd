package duels

//go:generate mockgen -destination=mock/mock_repository.go -package=mockduels -source=repository.go

import (
	"context"

	"github.com/siegecord/r6-bot-discord/internal/domain/duel"
)

// Repository defines the interface for challenge session storage.
//
// A session is written once when the challenge is issued and consumed
// exactly once when the second player answers. Take is destructive so
// duplicate webhook deliveries can never resolve the same session
// twice: the second caller sees not-found, which is indistinguishable
// from an expired or invalid id on purpose.
type Repository interface {
	// Create stores a new session. Returns an already-exists error if
	// the session id is present (duplicate challenge interactions are
	// rejected, not overwritten).
	Create(ctx context.Context, session *duel.Session) error

	// Take removes and returns the session with the given id. Returns
	// a not-found error for missing, expired, or already-taken ids.
	Take(ctx context.Context, id string) (*duel.Session, error)
}
