package tracker

//go:generate mockgen -destination=mock/mock_client.go -package=mocktracker -source=interface.go

import (
	"context"

	"github.com/siegecord/r6-bot-discord/internal/domain/stats"
)

// Client fetches normalized Rainbow Six Siege stats for a player
type Client interface {
	// Profile returns the stats record for a username. Failures carry
	// a not_found, rate_limited, or unknown error code.
	Profile(ctx context.Context, username string) (*stats.Record, error)
}
