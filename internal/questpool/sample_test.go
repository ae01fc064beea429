package questpool

import (
	"testing"

	"levelup_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestSample(t *testing.T) {
	pool := Pool(model.PeriodDaily)

	t.Run("Draws k distinct pool members", func(t *testing.T) {
		out := Sample(pool, DailyCount)
		assert.Len(t, out, DailyCount)

		seen := make(map[string]bool)
		for _, tmpl := range out {
			assert.False(t, seen[tmpl.Title], "duplicate template %q", tmpl.Title)
			seen[tmpl.Title] = true
			assert.True(t, containsTemplate(pool, tmpl), "template %q not in pool", tmpl.Title)
		}
	})

	t.Run("Pool smaller than k returns whole pool", func(t *testing.T) {
		small := []Template{
			{Title: "A", Period: model.PeriodDaily},
			{Title: "B", Period: model.PeriodDaily},
		}
		out := Sample(small, 5)
		assert.Len(t, out, 2)
	})

	t.Run("Empty pool", func(t *testing.T) {
		assert.Empty(t, Sample(nil, 3))
	})

	t.Run("Non-positive k", func(t *testing.T) {
		assert.Empty(t, Sample(pool, 0))
	})

	t.Run("Does not mutate pool", func(t *testing.T) {
		before := make([]Template, len(pool))
		copy(before, pool)
		Sample(pool, DailyCount)
		assert.Equal(t, before, pool)
	})
}

func TestPools(t *testing.T) {
	for _, period := range model.Periods {
		pool := Pool(period)
		assert.GreaterOrEqual(t, len(pool), SampleCount(period), "pool for %s too small", period)

		for _, tmpl := range pool {
			assert.NotEmpty(t, tmpl.Title)
			assert.Equal(t, period, tmpl.Period)
			assert.Greater(t, tmpl.XP, 0)
		}
	}
}

func containsTemplate(pool []Template, target Template) bool {
	for _, tmpl := range pool {
		if tmpl.Title == target.Title {
			return true
		}
	}
	return false
}
