package duel

//go:generate mockgen -destination=mock/mock_service.go -package=mockduel -source=service.go

import (
	"context"
	"time"

	game "github.com/siegecord/r6-bot-discord/internal/domain/duel"
	apperrors "github.com/siegecord/r6-bot-discord/internal/errors"
	"github.com/siegecord/r6-bot-discord/internal/repositories/duels"
	"github.com/siegecord/r6-bot-discord/internal/rng"
)

// Repository is an alias for the duel session repository interface
type Repository = duels.Repository

// Service defines the challenge session service interface
type Service interface {
	// Challenge records a new rock-paper-scissors challenge keyed by
	// the interaction id
	Challenge(ctx context.Context, input *ChallengeInput) (*game.Session, error)

	// Resolve consumes the session and computes the outcome. A session
	// can be resolved at most once; later calls see a not-found error.
	Resolve(ctx context.Context, input *ResolveInput) (*game.Outcome, error)

	// ShuffledChoices returns the choice catalog in random order for
	// the selection menu
	ShuffledChoices() []game.Choice
}

// ChallengeInput contains data for creating a challenge
type ChallengeInput struct {
	SessionID    string
	ChallengerID string
	Object       string
}

// ResolveInput contains data for resolving a challenge
type ResolveInput struct {
	SessionID   string
	ResponderID string
	Object      string
}

// service implements the Service interface
type service struct {
	repository Repository
	roller     rng.Roller
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository Repository // Required
	Roller     rng.Roller // Optional, will use default if nil
}

// NewService creates a new duel service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = rng.NewRandomRoller()
	}

	return &service{
		repository: cfg.Repository,
		roller:     roller,
	}
}

// Challenge implements Service.Challenge
func (s *service) Challenge(ctx context.Context, input *ChallengeInput) (*game.Session, error) {
	if input == nil {
		return nil, apperrors.Validation("input is required")
	}
	if input.SessionID == "" {
		return nil, apperrors.Validation("session id is required")
	}
	if input.ChallengerID == "" {
		return nil, apperrors.Validation("challenger id is required")
	}

	choice, ok := game.ChoiceByName(input.Object)
	if !ok {
		return nil, apperrors.Validationf("unknown object %q", input.Object)
	}

	session := &game.Session{
		ID:           input.SessionID,
		ChallengerID: input.ChallengerID,
		Choice:       choice.Name,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repository.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Resolve implements Service.Resolve
func (s *service) Resolve(ctx context.Context, input *ResolveInput) (*game.Outcome, error) {
	if input == nil {
		return nil, apperrors.Validation("input is required")
	}
	if input.SessionID == "" {
		return nil, apperrors.Validation("session id is required")
	}

	choice, ok := game.ChoiceByName(input.Object)
	if !ok {
		return nil, apperrors.Validationf("unknown object %q", input.Object)
	}

	session, err := s.repository.Take(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	outcome := game.Resolve(
		game.PlayerChoice{PlayerID: session.ChallengerID, Choice: session.Choice},
		game.PlayerChoice{PlayerID: input.ResponderID, Choice: choice.Name},
	)

	return &outcome, nil
}

// ShuffledChoices implements Service.ShuffledChoices
func (s *service) ShuffledChoices() []game.Choice {
	choices := game.Choices()

	// Fisher-Yates
	for i := len(choices) - 1; i > 0; i-- {
		j := s.roller.Intn(i + 1)
		choices[i], choices[j] = choices[j], choices[i]
	}

	return choices
}
