package duel

import "time"

// Session represents one in-progress rock-paper-scissors challenge.
// The ID is the interaction ID of the challenge command, which is the
// correlation key echoed back by Discord on the follow-up component
// interactions. Only the challenger's half is stored; the responder's
// choice arrives as an argument when the session is resolved.
type Session struct {
	ID           string    `json:"id"`
	ChallengerID string    `json:"challenger_id"`
	Choice       string    `json:"choice"`
	CreatedAt    time.Time `json:"created_at"`
}

// PlayerChoice pairs a player with the object they picked
type PlayerChoice struct {
	PlayerID string
	Choice   string
}
