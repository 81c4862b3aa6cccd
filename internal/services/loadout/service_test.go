package loadout_test

import (
	"testing"

	domain "github.com/siegecord/r6-bot-discord/internal/domain/loadout"
	apperrors "github.com/siegecord/r6-bot-discord/internal/errors"
	"github.com/siegecord/r6-bot-discord/internal/rng"
	"github.com/siegecord/r6-bot-discord/internal/services/loadout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(roller rng.Roller) loadout.Service {
	return loadout.NewService(&loadout.ServiceConfig{Roller: roller})
}

func TestService_PickChallenge(t *testing.T) {
	roller := rng.NewMockRoller()
	roller.SetInts([]int{0, 9})
	svc := newService(roller)

	assert.Equal(t, "Pistols Only", svc.PickChallenge())
	assert.Equal(t, "You Dodged a Challenge This Round", svc.PickChallenge())
}

func TestService_PickSight(t *testing.T) {
	tests := []struct {
		name      string
		sightType string
		wantLen   int
	}{
		{"normal catalog has 10 entries", "normal", 10},
		{"acog catalog has 13 entries", "acog", 13},
		{"dmr catalog has 15 entries", "dmr", 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, ok := domain.Sights(domain.SightType(tt.sightType))
			require.True(t, ok)
			require.Len(t, catalog, tt.wantLen)

			// Every draw lands inside the catalog
			roller := rng.NewMockRoller()
			roller.SetInts([]int{tt.wantLen - 1})
			svc := newService(roller)

			sight, err := svc.PickSight(tt.sightType)
			require.NoError(t, err)
			assert.Contains(t, catalog, sight)
		})
	}
}

func TestService_PickSight_InvalidType(t *testing.T) {
	svc := newService(rng.NewMockRoller())

	_, err := svc.PickSight("xyz")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestService_PickOperator(t *testing.T) {
	roller := rng.NewMockRoller()
	roller.SetInts([]int{0, 0})
	svc := newService(roller)

	attacker, err := svc.PickOperator("attack")
	require.NoError(t, err)
	assert.Equal(t, "Striker", attacker)

	defender, err := svc.PickOperator("defense")
	require.NoError(t, err)
	assert.Equal(t, "Skopos", defender)
}

func TestService_PickOperator_InvalidCategory(t *testing.T) {
	svc := newService(rng.NewMockRoller())

	_, err := svc.PickOperator("support")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCatalogSizes(t *testing.T) {
	attackers, ok := domain.Operators(domain.OperatorCategoryAttack)
	require.True(t, ok)
	assert.Len(t, attackers, 37)

	defenders, ok := domain.Operators(domain.OperatorCategoryDefense)
	require.True(t, ok)
	assert.Len(t, defenders, 37)

	assert.Len(t, domain.Challenges(), 10)
}
