package duel

import (
	"fmt"
	"strings"
)

// Outcome is the result of resolving two player choices
type Outcome struct {
	Tie    bool
	Winner PlayerChoice
	Loser  PlayerChoice
}

// Resolve computes the rock-paper-scissors outcome for the challenger
// and responder choices. Unknown choices resolve as a tie; the service
// layer validates choices before they get here.
func Resolve(challenger, responder PlayerChoice) Outcome {
	a := strings.ToLower(challenger.Choice)
	b := strings.ToLower(responder.Choice)

	if a == b {
		return Outcome{Tie: true, Winner: challenger, Loser: responder}
	}

	if target, ok := Beats(a); ok && target == b {
		return Outcome{Winner: challenger, Loser: responder}
	}
	if target, ok := Beats(b); ok && target == a {
		return Outcome{Winner: responder, Loser: challenger}
	}

	return Outcome{Tie: true, Winner: challenger, Loser: responder}
}

// Message renders the outcome as a channel message addressing both
// players by mention.
func (o Outcome) Message() string {
	if o.Tie {
		return fmt.Sprintf("<@%s> and <@%s> both picked **%s** — it's a tie!",
			o.Winner.PlayerID, o.Loser.PlayerID, title(o.Winner.Choice))
	}
	return fmt.Sprintf("**%s** beats **%s** — <@%s> wins against <@%s>!",
		title(o.Winner.Choice), title(o.Loser.Choice), o.Winner.PlayerID, o.Loser.PlayerID)
}

func title(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
