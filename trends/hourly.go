package trends

import (
	"sort"
	"time"

	"github.com/supertruth/violet/core"
)

// Late-night hours run from 11pm through 4am; daytime is 8am through 6pm.
var lateNightHours = map[int]bool{23: true, 0: true, 1: true, 2: true, 3: true, 4: true}

const (
	daytimeStart = 8
	daytimeEnd   = 18

	// daytimeFloor guards the anxiety ratio when daytime interest is
	// near zero.
	daytimeFloor = 0.1

	peakHourCount = 3
)

// AggregateHourly reduces an hour-resolution series to a per-term search
// behavior profile: mean interest by hour of day and day of week, the top
// peak hours, and the late-night to daytime anxiety ratio.
func AggregateHourly(termID core.ID, points []HourlyPoint, fetchedAt time.Time) (*core.HourlyPattern, error) {
	if len(points) == 0 {
		return nil, ErrNoHourlyData
	}

	hourSums := make([]float64, 24)
	hourCounts := make([]int, 24)
	daySums := make([]float64, 7)
	dayCounts := make([]int, 7)

	for _, point := range points {
		hour := point.Time.Hour()
		hourSums[hour] += float64(point.Interest)
		hourCounts[hour]++

		// Weekday indexed Monday=0
		day := (int(point.Time.Weekday()) + 6) % 7
		daySums[day] += float64(point.Interest)
		dayCounts[day]++
	}

	hourlyAvg := make([]float64, 24)
	for hour := range hourSums {
		if hourCounts[hour] > 0 {
			hourlyAvg[hour] = hourSums[hour] / float64(hourCounts[hour])
		}
	}
	dayOfWeekAvg := make([]float64, 7)
	for day := range daySums {
		if dayCounts[day] > 0 {
			dayOfWeekAvg[day] = daySums[day] / float64(dayCounts[day])
		}
	}

	var lateSum, daySum float64
	var lateCount, dayCount int
	for hour, avg := range hourlyAvg {
		if lateNightHours[hour] {
			lateSum += avg
			lateCount++
		}
		if hour >= daytimeStart && hour <= daytimeEnd {
			daySum += avg
			dayCount++
		}
	}
	lateNightAvg := lateSum / float64(lateCount)
	daytimeAvg := daySum / float64(dayCount)

	denominator := daytimeAvg
	if denominator < daytimeFloor {
		denominator = daytimeFloor
	}
	anxietyIndex := lateNightAvg / denominator

	return &core.HourlyPattern{
		Id:           termID,
		TermId:       termID,
		HourlyAvg:    hourlyAvg,
		DayOfWeekAvg: dayOfWeekAvg,
		PeakHours:    peakHours(hourlyAvg),
		LateNightAvg: lateNightAvg,
		DaytimeAvg:   daytimeAvg,
		AnxietyIndex: anxietyIndex,
		FetchedAt:    fetchedAt,
	}, nil
}

// peakHours returns the hours with the highest average interest, best
// first. Equal averages break toward the earlier hour.
func peakHours(hourlyAvg []float64) []int {
	hours := make([]int, len(hourlyAvg))
	for i := range hours {
		hours[i] = i
	}
	sort.SliceStable(hours, func(i, j int) bool {
		return hourlyAvg[hours[i]] > hourlyAvg[hours[j]]
	})
	if len(hours) > peakHourCount {
		hours = hours[:peakHourCount]
	}
	return hours
}
