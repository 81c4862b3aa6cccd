package duels_test

import (
	"context"
	"testing"
	"time"

	"github.com/siegecord/r6-bot-discord/internal/domain/duel"
	apperrors "github.com/siegecord/r6-bot-discord/internal/errors"
	"github.com/siegecord/r6-bot-discord/internal/repositories/duels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock implements duels.TimeProvider with a settable time
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func newSession(id string) *duel.Session {
	return &duel.Session{
		ID:           id,
		ChallengerID: "user-1",
		Choice:       "rock",
		CreatedAt:    time.Now(),
	}
}

func TestInMemory_CreateAndTake(t *testing.T) {
	ctx := context.Background()
	repo := duels.NewInMemoryRepository(nil)

	require.NoError(t, repo.Create(ctx, newSession("interaction-1")))

	got, err := repo.Take(ctx, "interaction-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.ChallengerID)
	assert.Equal(t, "rock", got.Choice)
}

func TestInMemory_TakeIsDestructive(t *testing.T) {
	ctx := context.Background()
	repo := duels.NewInMemoryRepository(nil)

	require.NoError(t, repo.Create(ctx, newSession("interaction-1")))

	_, err := repo.Take(ctx, "interaction-1")
	require.NoError(t, err)

	// Second take must observe not-found: exactly one resolution
	_, err = repo.Take(ctx, "interaction-1")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestInMemory_DuplicateCreateRejected(t *testing.T) {
	ctx := context.Background()
	repo := duels.NewInMemoryRepository(nil)

	require.NoError(t, repo.Create(ctx, newSession("interaction-1")))

	err := repo.Create(ctx, newSession("interaction-1"))
	require.Error(t, err)
	assert.True(t, apperrors.IsAlreadyExists(err))
}

func TestInMemory_TakeUnknownID(t *testing.T) {
	repo := duels.NewInMemoryRepository(nil)

	_, err := repo.Take(context.Background(), "never-created")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestInMemory_Validation(t *testing.T) {
	ctx := context.Background()
	repo := duels.NewInMemoryRepository(nil)

	assert.Error(t, repo.Create(ctx, nil))
	assert.Error(t, repo.Create(ctx, &duel.Session{ChallengerID: "user-1"}))
}

func TestInMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Now()}
	repo := duels.NewInMemoryRepository(&duels.InMemoryConfig{
		TTL:          15 * time.Minute,
		TimeProvider: clock,
	})

	session := newSession("interaction-1")
	session.CreatedAt = clock.now
	require.NoError(t, repo.Create(ctx, session))

	// Still there just inside the TTL
	clock.now = clock.now.Add(14 * time.Minute)
	fresh := newSession("interaction-2")
	fresh.CreatedAt = clock.now
	require.NoError(t, repo.Create(ctx, fresh))

	got, err := repo.Take(ctx, "interaction-1")
	require.NoError(t, err)
	assert.Equal(t, "interaction-1", got.ID)

	// An expired session behaves exactly like a missing one
	clock.now = clock.now.Add(16 * time.Minute)
	_, err = repo.Take(ctx, "interaction-2")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestInMemory_CreateSweepsExpired(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Now()}
	repo := duels.NewInMemoryRepository(&duels.InMemoryConfig{
		TTL:          time.Minute,
		TimeProvider: clock,
	})

	stale := newSession("stale")
	stale.CreatedAt = clock.now
	require.NoError(t, repo.Create(ctx, stale))

	clock.now = clock.now.Add(2 * time.Minute)

	// The sweep on create frees the expired id for reuse
	reused := newSession("stale")
	reused.CreatedAt = clock.now
	require.NoError(t, repo.Create(ctx, reused))
}
