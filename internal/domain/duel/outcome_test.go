package duel_test

import (
	"testing"

	"github.com/siegecord/r6-bot-discord/internal/domain/duel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Ties(t *testing.T) {
	for _, c := range duel.Choices() {
		t.Run(c.Name, func(t *testing.T) {
			outcome := duel.Resolve(
				duel.PlayerChoice{PlayerID: "111", Choice: c.Name},
				duel.PlayerChoice{PlayerID: "222", Choice: c.Name},
			)
			assert.True(t, outcome.Tie)
		})
	}
}

func TestResolve_Cycle(t *testing.T) {
	tests := []struct {
		name       string
		challenger string
		responder  string
		wantWinner string // player id
	}{
		{"rock beats scissors", "rock", "scissors", "111"},
		{"scissors lose to rock", "scissors", "rock", "222"},
		{"paper beats rock", "paper", "rock", "111"},
		{"rock loses to paper", "rock", "paper", "222"},
		{"scissors beat paper", "scissors", "paper", "111"},
		{"paper loses to scissors", "paper", "scissors", "222"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := duel.Resolve(
				duel.PlayerChoice{PlayerID: "111", Choice: tt.challenger},
				duel.PlayerChoice{PlayerID: "222", Choice: tt.responder},
			)
			require.False(t, outcome.Tie)
			assert.Equal(t, tt.wantWinner, outcome.Winner.PlayerID)
		})
	}
}

// The relation must be a complete 3-cycle: every choice beats exactly
// one other and loses to exactly one other.
func TestBeats_CompleteCycle(t *testing.T) {
	choices := duel.Choices()
	require.Len(t, choices, 3)

	beaten := make(map[string]int)
	for _, c := range choices {
		target, ok := duel.Beats(c.Name)
		require.True(t, ok, "choice %q has no beats entry", c.Name)
		assert.NotEqual(t, c.Name, target, "choice %q beats itself", c.Name)

		_, inCatalog := duel.ChoiceByName(target)
		assert.True(t, inCatalog, "choice %q beats unknown object %q", c.Name, target)
		beaten[target]++
	}

	for _, c := range choices {
		assert.Equal(t, 1, beaten[c.Name], "choice %q must lose to exactly one other", c.Name)
	}
}

func TestOutcome_Message(t *testing.T) {
	outcome := duel.Resolve(
		duel.PlayerChoice{PlayerID: "111", Choice: "rock"},
		duel.PlayerChoice{PlayerID: "222", Choice: "scissors"},
	)
	msg := outcome.Message()
	assert.Contains(t, msg, "**Rock** beats **Scissors**")
	assert.Contains(t, msg, "<@111>")
	assert.Contains(t, msg, "<@222>")

	tie := duel.Resolve(
		duel.PlayerChoice{PlayerID: "111", Choice: "paper"},
		duel.PlayerChoice{PlayerID: "222", Choice: "paper"},
	)
	assert.Contains(t, tie.Message(), "tie")
	assert.Contains(t, tie.Message(), "**Paper**")
}

func TestChoiceByName(t *testing.T) {
	c, ok := duel.ChoiceByName("Rock")
	require.True(t, ok)
	assert.Equal(t, "rock", c.Name)

	_, ok = duel.ChoiceByName("lizard")
	assert.False(t, ok)
}
