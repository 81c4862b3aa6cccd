package duel

import "strings"

// Choice is one object in the rock-paper-scissors catalog
type Choice struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// The catalog is an ordered list plus an explicit beats relation.
// Adding a fourth object means extending beats by hand; the plain
// three-cycle does not generalize on its own.
var choices = []Choice{
	{Name: "rock", Description: "sedimentary, igneous, or perhaps even metamorphic"},
	{Name: "paper", Description: "versatile and iconic"},
	{Name: "scissors", Description: "careful! sharp! edges!!"},
}

// beats maps each choice to the single choice it defeats
var beats = map[string]string{
	"rock":     "scissors",
	"paper":    "rock",
	"scissors": "paper",
}

// Choices returns the ordered choice catalog
func Choices() []Choice {
	out := make([]Choice, len(choices))
	copy(out, choices)
	return out
}

// ChoiceByName returns the catalog entry for name, case-insensitively
func ChoiceByName(name string) (Choice, bool) {
	lower := strings.ToLower(name)
	for _, c := range choices {
		if c.Name == lower {
			return c, true
		}
	}
	return Choice{}, false
}

// Beats returns the name of the choice that name defeats
func Beats(name string) (string, bool) {
	target, ok := beats[strings.ToLower(name)]
	return target, ok
}
