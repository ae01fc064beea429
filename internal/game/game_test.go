package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankFor(t *testing.T) {
	tests := []struct {
		name     string
		points   int
		expected string
	}{
		{"Zero points", 0, "E"},
		{"Top of first band", 999, "E"},
		{"Cross into E+", 1000, "E+"},
		{"Middle band", 12500, "C+"},
		{"Start of S", 45000, "S"},
		{"Last band lower bound", 90000, "National Rank"},
		{"Inside last band", 1500000, "National Rank"},
		{"At cap", RankCap, "National Rank"},
		{"Beyond cap stays at top band", RankCap + 1, "National Rank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RankFor(tt.points))
		})
	}
}

func TestRankFor_BandsAreContiguous(t *testing.T) {
	// Every boundary must resolve to exactly one band; no point total in
	// range may fall through to Unranked.
	for _, band := range rankBands {
		assert.Equal(t, band.label, RankFor(band.low))
		assert.Equal(t, band.label, RankFor(band.high))
	}

	prev := rankBands[0]
	for _, band := range rankBands[1:] {
		assert.Equal(t, prev.high+1, band.low, "gap between %s and %s", prev.label, band.label)
		prev = band
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name     string
		points   int
		expected int
	}{
		{"Zero points", 0, 1},
		{"Just below first threshold", 49, 1},
		{"At first threshold", 50, 2},
		{"Between thresholds", 200, 3},
		{"At last threshold", 2750, MaxLevel},
		{"Far beyond last threshold", 100000, MaxLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LevelFor(tt.points))
		})
	}
}

func TestLevelFor_Monotonic(t *testing.T) {
	prev := LevelFor(0)
	for points := 1; points <= 3000; points++ {
		level := LevelFor(points)
		assert.GreaterOrEqual(t, level, prev, "level dropped at %d points", points)
		prev = level
	}
	assert.Equal(t, MaxLevel, prev)
}

func TestDeriveStats(t *testing.T) {
	tests := []struct {
		name     string
		points   int
		counts   ActivityCounts
		expected Stats
	}{
		{
			name:     "Fresh user",
			points:   0,
			counts:   ActivityCounts{},
			expected: Stats{Mental: 50},
		},
		{
			name:   "Mixed activity",
			points: 300,
			counts: ActivityCounts{CompletedTasks: 4, StudyLogs: 2, CompletedQuests: 3},
			expected: Stats{
				Strength: 30 + 20,
				Finance:  15 + 6,
				Wisdom:   20 + 12,
				Growth:   9 * 7,
				Mental:   50 + 10,
			},
		},
		{
			name:   "Points only",
			points: 600,
			counts: ActivityCounts{},
			expected: Stats{
				Strength: 60,
				Finance:  30,
				Wisdom:   40,
				Growth:   0,
				Mental:   70,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveStats(tt.points, tt.counts))
		})
	}
}
