package loadout

//go:generate mockgen -destination=mock/mock_service.go -package=mockloadout -source=service.go

import (
	game "github.com/siegecord/r6-bot-discord/internal/domain/loadout"
	apperrors "github.com/siegecord/r6-bot-discord/internal/errors"
	"github.com/siegecord/r6-bot-discord/internal/rng"
)

// Service defines the random-pick service interface
type Service interface {
	// PickChallenge draws a random challenge
	PickChallenge() string

	// PickSight draws a random sight for the given zoom type. An
	// unknown type is a validation error.
	PickSight(sightType string) (string, error)

	// PickOperator draws a random operator for the given category. An
	// unknown category is a validation error.
	PickOperator(category string) (string, error)
}

// service implements the Service interface
type service struct {
	roller rng.Roller
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller rng.Roller // Optional, will use default if nil
}

// NewService creates a new loadout service
func NewService(cfg *ServiceConfig) Service {
	roller := cfg.Roller
	if roller == nil {
		roller = rng.NewRandomRoller()
	}

	return &service{
		roller: roller,
	}
}

// PickChallenge implements Service.PickChallenge
func (s *service) PickChallenge() string {
	challenges := game.Challenges()
	return challenges[s.roller.Intn(len(challenges))]
}

// PickSight implements Service.PickSight
func (s *service) PickSight(sightType string) (string, error) {
	sights, ok := game.Sights(game.SightType(sightType))
	if !ok {
		return "", apperrors.Validationf("invalid sight type %q", sightType)
	}
	return sights[s.roller.Intn(len(sights))], nil
}

// PickOperator implements Service.PickOperator
func (s *service) PickOperator(category string) (string, error) {
	operators, ok := game.Operators(game.OperatorCategory(category))
	if !ok {
		return "", apperrors.Validationf("invalid operator category %q", category)
	}
	return operators[s.roller.Intn(len(operators))], nil
}
