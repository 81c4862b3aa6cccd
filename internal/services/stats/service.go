package stats

//go:generate mockgen -destination=mock/mock_service.go -package=mockstats -source=service.go

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/siegecord/r6-bot-discord/internal/clients/tracker"
	"github.com/siegecord/r6-bot-discord/internal/domain/stats"
	apperrors "github.com/siegecord/r6-bot-discord/internal/errors"
	"github.com/siegecord/r6-bot-discord/internal/rng"
)

// Service defines the stats service interface
type Service interface {
	// Lookup fetches the stats record for one player
	Lookup(ctx context.Context, username string) (*stats.Record, error)

	// Compare fetches both players and compares them metric by metric
	Compare(ctx context.Context, username1, username2 string) (*Comparison, error)

	// Duel fetches both players and runs the probabilistic 1v1
	Duel(ctx context.Context, username1, username2 string) (*DuelResult, error)
}

// Comparison is the per-metric comparison of two players
type Comparison struct {
	Username1 string
	Username2 string

	// Metrics holds one formatted verdict per metric, in display order
	Metrics []MetricVerdict
}

// MetricVerdict is the outcome of one metric comparison
type MetricVerdict struct {
	Name string
	Text string
}

// DuelResult is the outcome of a probabilistic 1v1
type DuelResult struct {
	Username1 string
	Username2 string
	Stats1    *stats.Record
	Stats2    *stats.Record

	Winner        string
	WinnerPercent float64
	Percent1      float64
	Percent2      float64
	Draw          float64
}

// service implements the Service interface
type service struct {
	tracker tracker.Client
	roller  rng.Roller
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Tracker tracker.Client // Required
	Roller  rng.Roller     // Optional, will use default if nil
}

// NewService creates a new stats service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Tracker == nil {
		panic("tracker client is required")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = rng.NewRandomRoller()
	}

	return &service{
		tracker: cfg.Tracker,
		roller:  roller,
	}
}

// Lookup implements Service.Lookup
func (s *service) Lookup(ctx context.Context, username string) (*stats.Record, error) {
	if username == "" {
		return nil, apperrors.Validation("username is required")
	}
	return s.tracker.Profile(ctx, username)
}

// fetchBoth fetches both players concurrently. Either failure fails
// the whole operation with the fetch's own error code; no partial
// results.
func (s *service) fetchBoth(ctx context.Context, username1, username2 string) (*stats.Record, *stats.Record, error) {
	if username1 == "" || username2 == "" {
		return nil, nil, apperrors.Validation("two usernames are required")
	}

	var record1, record2 *stats.Record

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := s.tracker.Profile(gctx, username1)
		record1 = r
		return err
	})
	g.Go(func() error {
		r, err := s.tracker.Profile(gctx, username2)
		record2 = r
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return record1, record2, nil
}

// Compare implements Service.Compare
func (s *service) Compare(ctx context.Context, username1, username2 string) (*Comparison, error) {
	record1, record2, err := s.fetchBoth(ctx, username1, username2)
	if err != nil {
		return nil, err
	}

	metrics := []struct {
		name  string
		a     stats.Stat
		b     stats.Stat
		whole bool
	}{
		{"Lifetime K/D", record1.LifetimeKD, record2.LifetimeKD, false},
		{"Current K/D", record1.CurrentKD, record2.CurrentKD, false},
		{"Max Rank", record1.MaxRank, record2.MaxRank, true},
		{"Current Rank", record1.CurrentRank, record2.CurrentRank, true},
	}

	comparison := &Comparison{
		Username1: username1,
		Username2: username2,
	}

	for _, m := range metrics {
		order, margin := stats.CompareStat(m.a, m.b, m.whole)

		decimals := 2
		if m.whole {
			decimals = 0
		}

		var text string
		switch order {
		case stats.MetricFirstHigher:
			text = fmt.Sprintf("%s has higher %s by %.*f", username1, m.name, decimals, margin)
		case stats.MetricSecondHigher:
			text = fmt.Sprintf("%s has higher %s by %.*f", username2, m.name, decimals, margin)
		case stats.MetricEqual:
			text = fmt.Sprintf("Both players have the same %s", m.name)
		default:
			text = fmt.Sprintf("%s is not available for comparison", m.name)
		}

		comparison.Metrics = append(comparison.Metrics, MetricVerdict{Name: m.name, Text: text})
	}

	return comparison, nil
}

// Duel implements Service.Duel
func (s *service) Duel(ctx context.Context, username1, username2 string) (*DuelResult, error) {
	record1, record2, err := s.fetchBoth(ctx, username1, username2)
	if err != nil {
		return nil, err
	}

	weight1, weight2 := stats.DuelOdds(*record1, *record2)
	percent1 := stats.WinPercent(weight1, weight2)
	percent2 := stats.WinPercent(weight2, weight1)

	result := &DuelResult{
		Username1: username1,
		Username2: username2,
		Stats1:    record1,
		Stats2:    record2,
		Percent1:  percent1,
		Percent2:  percent2,
		Draw:      s.roller.Percent(),
	}

	if result.Draw <= percent1 {
		result.Winner = username1
		result.WinnerPercent = percent1
	} else {
		result.Winner = username2
		result.WinnerPercent = percent2
	}

	return result, nil
}
