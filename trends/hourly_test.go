package trends

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supertruth/violet/core"
)

// flatWeek builds seven days of hourly points with the given interest at
// every hour, then applies overrides per hour of day.
func flatWeek(base int, overrides map[int]int) []HourlyPoint {
	start := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC) // a Monday
	points := make([]HourlyPoint, 0, 7*24)
	for day := 0; day < 7; day++ {
		for hour := 0; hour < 24; hour++ {
			interest := base
			if v, ok := overrides[hour]; ok {
				interest = v
			}
			points = append(points, HourlyPoint{
				Time:     start.Add(time.Duration(day*24+hour) * time.Hour),
				Interest: interest,
			})
		}
	}
	return points
}

func TestAggregateHourly_AnxietyIndex(t *testing.T) {
	// Late-night hours at 60, everything else at 20
	points := flatWeek(20, map[int]int{23: 60, 0: 60, 1: 60, 2: 60, 3: 60, 4: 60})

	pattern, err := AggregateHourly(7, points, time.Now())
	require.NoError(t, err)

	assert.InDelta(t, 60.0, pattern.LateNightAvg, 1e-9)
	assert.InDelta(t, 20.0, pattern.DaytimeAvg, 1e-9)
	assert.InDelta(t, 3.0, pattern.AnxietyIndex, 1e-9)
	assert.Equal(t, core.ID(7), pattern.Id)
	assert.Equal(t, core.ID(7), pattern.TermId)
}

func TestAggregateHourly_PeakHours(t *testing.T) {
	points := flatWeek(10, map[int]int{21: 90, 22: 80, 9: 70})

	pattern, err := AggregateHourly(1, points, time.Now())
	require.NoError(t, err)

	assert.Equal(t, []int{21, 22, 9}, pattern.PeakHours)
}

func TestAggregateHourly_DayOfWeekIndexing(t *testing.T) {
	// Single point on a Wednesday
	wednesday := time.Date(2026, 8, 19, 12, 0, 0, 0, time.UTC)
	points := []HourlyPoint{{Time: wednesday, Interest: 50}}

	pattern, err := AggregateHourly(1, points, time.Now())
	require.NoError(t, err)

	// Monday=0, so Wednesday lands at index 2
	assert.InDelta(t, 50.0, pattern.DayOfWeekAvg[2], 1e-9)
	assert.Zero(t, pattern.DayOfWeekAvg[0])
}

func TestAggregateHourly_ZeroDaytimeFloor(t *testing.T) {
	// Interest only at night; the ratio is bounded by the daytime floor
	points := flatWeek(0, map[int]int{1: 10})

	pattern, err := AggregateHourly(1, points, time.Now())
	require.NoError(t, err)

	assert.InDelta(t, 10.0/6.0/0.1, pattern.AnxietyIndex, 1e-9)
}

func TestAggregateHourly_Empty(t *testing.T) {
	_, err := AggregateHourly(1, nil, time.Now())
	assert.ErrorIs(t, err, ErrNoHourlyData)
}
