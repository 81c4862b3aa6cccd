package stats_test

import (
	"testing"

	"github.com/siegecord/r6-bot-discord/internal/domain/stats"
	"github.com/stretchr/testify/assert"
)

func TestDuelOdds(t *testing.T) {
	tests := []struct {
		name  string
		a     stats.Record
		b     stats.Record
		wantA int
		wantB int
	}{
		{
			name: "kd advantage, equal rank",
			a: stats.Record{
				CurrentKD: stats.Numeric(2.0),
				MaxRank:   stats.Numeric(5000),
			},
			b: stats.Record{
				CurrentKD: stats.Numeric(1.0),
				MaxRank:   stats.Numeric(5000),
			},
			wantA: 21, // 1 + floor(1.0 / 0.05)
			wantB: 1,
		},
		{
			name: "rank advantage, equal kd",
			a: stats.Record{
				CurrentKD: stats.Numeric(1.1),
				MaxRank:   stats.Numeric(4500),
			},
			b: stats.Record{
				CurrentKD: stats.Numeric(1.1),
				MaxRank:   stats.Numeric(5300),
			},
			wantA: 1,
			wantB: 4, // 1 + floor(800 / 250)
		},
		{
			name: "bonuses split across axes",
			a: stats.Record{
				CurrentKD: stats.Numeric(1.5),
				MaxRank:   stats.Numeric(3000),
			},
			b: stats.Record{
				CurrentKD: stats.Numeric(1.0),
				MaxRank:   stats.Numeric(3600),
			},
			wantA: 11, // 1 + floor(0.5 / 0.05)
			wantB: 3,  // 1 + floor(600 / 250)
		},
		{
			name: "identical records",
			a: stats.Record{
				CurrentKD: stats.Numeric(1.0),
				MaxRank:   stats.Numeric(2500),
			},
			b: stats.Record{
				CurrentKD: stats.Numeric(1.0),
				MaxRank:   stats.Numeric(2500),
			},
			wantA: 1,
			wantB: 1,
		},
		{
			name: "unreported kd contributes nothing",
			a: stats.Record{
				CurrentKD: stats.NotReported(),
				MaxRank:   stats.Numeric(5000),
			},
			b: stats.Record{
				CurrentKD: stats.Numeric(1.0),
				MaxRank:   stats.Numeric(4000),
			},
			wantA: 5, // rank axis only: 1 + floor(1000 / 250)
			wantB: 1,
		},
		{
			name: "both sides fully unreported",
			a: stats.Record{
				CurrentKD: stats.NotReported(),
				MaxRank:   stats.NotReported(),
			},
			b: stats.Record{
				CurrentKD: stats.NotReported(),
				MaxRank:   stats.NotReported(),
			},
			wantA: 1,
			wantB: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotA, gotB := stats.DuelOdds(tt.a, tt.b)
			assert.Equal(t, tt.wantA, gotA)
			assert.Equal(t, tt.wantB, gotB)
		})
	}
}

func TestWinPercent(t *testing.T) {
	assert.InDelta(t, 95.4545, stats.WinPercent(21, 1), 0.001)
	assert.InDelta(t, 4.5454, stats.WinPercent(1, 21), 0.001)
	assert.InDelta(t, 50.0, stats.WinPercent(1, 1), 0.001)
}

func TestStat_Format(t *testing.T) {
	assert.Equal(t, "1.25", stats.Numeric(1.25).Format(2))
	assert.Equal(t, "5000", stats.Numeric(5000).Format(0))
	assert.Equal(t, "N/A", stats.NotReported().Format(2))
}
