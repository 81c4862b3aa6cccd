package stats_test

import (
	"testing"

	"github.com/siegecord/r6-bot-discord/internal/domain/stats"
	"github.com/stretchr/testify/assert"
)

func TestCompareStat(t *testing.T) {
	tests := []struct {
		name       string
		a          stats.Stat
		b          stats.Stat
		whole      bool
		wantOrder  stats.MetricOrder
		wantMargin float64
	}{
		{
			name:      "equal ranks report same",
			a:         stats.Numeric(5000),
			b:         stats.Numeric(5000),
			whole:     true,
			wantOrder: stats.MetricEqual,
		},
		{
			name:       "first rank higher",
			a:          stats.Numeric(5200),
			b:          stats.Numeric(4800),
			whole:      true,
			wantOrder:  stats.MetricFirstHigher,
			wantMargin: 400,
		},
		{
			name:       "second kd higher at two decimals",
			a:          stats.Numeric(1.11),
			b:          stats.Numeric(1.32),
			whole:      false,
			wantOrder:  stats.MetricSecondHigher,
			wantMargin: 0.21,
		},
		{
			name:      "kd difference below display precision is equal",
			a:         stats.Numeric(1.111),
			b:         stats.Numeric(1.112),
			whole:     false,
			wantOrder: stats.MetricEqual,
		},
		{
			name:      "unreported side is not comparable",
			a:         stats.NotReported(),
			b:         stats.Numeric(1.0),
			whole:     false,
			wantOrder: stats.MetricNotComparable,
		},
		{
			name:      "both unreported is not comparable",
			a:         stats.NotReported(),
			b:         stats.NotReported(),
			whole:     true,
			wantOrder: stats.MetricNotComparable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, margin := stats.CompareStat(tt.a, tt.b, tt.whole)
			assert.Equal(t, tt.wantOrder, order)
			assert.InDelta(t, tt.wantMargin, margin, 0.0001)
		})
	}
}
