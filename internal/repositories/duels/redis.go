package duels

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/siegecord/r6-bot-discord/internal/domain/duel"
	apperrors "github.com/siegecord/r6-bot-discord/internal/errors"
)

const (
	sessionKeyPrefix = "duel:"

	// Default TTL for unanswered challenges
	defaultSessionTTL = 15 * time.Minute
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client     redis.UniversalClient
	SessionTTL time.Duration
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client     redis.UniversalClient
	sessionTTL time.Duration
}

// NewRedisRepository creates a new Redis-backed session repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	ttl := cfg.SessionTTL
	if ttl == 0 {
		ttl = defaultSessionTTL
	}

	return &redisRepository{
		client:     cfg.Client,
		sessionTTL: ttl,
	}
}

// Create stores a new session
func (r *redisRepository) Create(ctx context.Context, session *duel.Session) error {
	if session == nil {
		return apperrors.Validation("session cannot be nil")
	}
	if session.ID == "" {
		return apperrors.Validation("session ID cannot be empty")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return apperrors.Wrap(err, "failed to serialize session")
	}

	// SetNX rejects duplicate ids; the key TTL handles expiry
	ok, err := r.client.SetNX(ctx, sessionKeyPrefix+session.ID, data, r.sessionTTL).Result()
	if err != nil {
		return apperrors.Wrap(err, "failed to create session")
	}
	if !ok {
		return apperrors.AlreadyExistsf("session with ID %s already exists", session.ID)
	}

	return nil
}

// Take removes and returns a session. GETDEL makes the read-and-remove
// atomic, so concurrent resolvers cannot both win.
func (r *redisRepository) Take(ctx context.Context, id string) (*duel.Session, error) {
	data, err := r.client.GetDel(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFoundf("session not found: %s", id)
		}
		return nil, apperrors.Wrap(err, "failed to take session")
	}

	var session duel.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, apperrors.Wrap(err, "failed to deserialize session")
	}

	return &session, nil
}
