package trends

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"time"

	"github.com/supertruth/violet/core"
)

// StubFetcher generates deterministic synthetic trend data. The same term
// always produces the same series, which makes it usable for development,
// demos and tests without touching a live data source.
type StubFetcher struct {
	// Weeks is the length of the weekly series. Defaults to 12.
	Weeks int

	// Now anchors generated dates. Zero means time.Now.
	Now time.Time
}

// NewStubFetcher returns a stub generating 12 weeks of synthetic data.
func NewStubFetcher() *StubFetcher {
	return &StubFetcher{Weeks: 12}
}

func (f *StubFetcher) now() time.Time {
	if f.Now.IsZero() {
		return time.Now()
	}
	return f.Now
}

// termSeed derives a stable per-term seed from the term text.
func termSeed(text string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(text))
	return h.Sum64()
}

// FetchSignals generates a sinusoidal weekly series, a small regional
// breakdown and a handful of related items. Some terms get a breakout
// rising query so promotion paths stay exercised.
func (f *StubFetcher) FetchSignals(ctx context.Context, term *core.Term, opts FetchOptions) (*TermSignals, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seed := termSeed(term.Text)
	weeks := f.Weeks
	if weeks <= 0 {
		weeks = 12
	}

	base := 30 + int(seed%40)       // 30-69
	amplitude := 5 + int(seed%15)   // 5-19
	phase := float64(seed%7) / 7.0 * 2 * math.Pi

	end := f.now().Truncate(24 * time.Hour)
	weekly := make([]TimePoint, 0, weeks)
	for i := 0; i < weeks; i++ {
		angle := phase + float64(i)/float64(weeks)*2*math.Pi
		interest := base + int(float64(amplitude)*math.Sin(angle))
		interest = clampInterest(interest)
		weekly = append(weekly, TimePoint{
			Date:     end.AddDate(0, 0, -7*(weeks-1-i)),
			Interest: interest,
		})
	}

	states := []RegionPoint{
		{Code: "TX", Name: "Texas"},
		{Code: "CA", Name: "California"},
		{Code: "NY", Name: "New York"},
		{Code: "FL", Name: "Florida"},
		{Code: "MS", Name: "Mississippi"},
	}
	for i := range states {
		states[i].Interest = clampInterest(20 + int((seed>>uint(8*i))%70))
	}

	related := []RelatedItem{
		{
			Query:          fmt.Sprintf("%s symptoms", term.Text),
			Kind:           "top_query",
			Value:          "100",
			ExtractedValue: 100,
		},
		{
			Query:          fmt.Sprintf("%s treatment", term.Text),
			Kind:           "top_query",
			Value:          "75",
			ExtractedValue: 75,
		},
		{
			Query:          fmt.Sprintf("new %s trial", term.Text),
			Kind:           "rising_query",
			Value:          "+150%",
			ExtractedValue: 150,
		},
	}
	// Every third term surfaces a breakout worth promoting
	if seed%3 == 0 {
		related = append(related, RelatedItem{
			Query:          fmt.Sprintf("%s breakthrough", term.Text),
			Kind:           "rising_query",
			Value:          "Breakout",
			ExtractedValue: 5000,
		})
	}

	return &TermSignals{Weekly: weekly, Regional: states, Related: related}, nil
}

// FetchHourly generates seven days of hourly points with an evening bump
// whose size varies by term.
func (f *StubFetcher) FetchHourly(ctx context.Context, term *core.Term, opts FetchOptions) ([]HourlyPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seed := termSeed(term.Text)
	base := 20 + int(seed%20)
	nightBump := int(seed % 30)

	end := f.now().Truncate(time.Hour)
	points := make([]HourlyPoint, 0, 7*24)
	for i := 7*24 - 1; i >= 0; i-- {
		at := end.Add(-time.Duration(i) * time.Hour)
		interest := base
		hour := at.Hour()
		if lateNightHours[hour] {
			interest += nightBump
		} else if hour >= daytimeStart && hour <= daytimeEnd {
			interest += 10
		}
		points = append(points, HourlyPoint{Time: at, Interest: clampInterest(interest)})
	}
	return points, nil
}

func clampInterest(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
