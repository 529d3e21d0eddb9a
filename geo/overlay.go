package geo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/supertruth/violet/storage"
)

// ErrNilRegionRepository is returned when Refresh is given no region
// repository to update.
var ErrNilRegionRepository = errors.New("region repository cannot be nil")

// Overlay is per-state public health context layered onto regions.
type Overlay struct {
	// Vulnerability is the CDC social vulnerability index, 0-1.
	Vulnerability float64

	// UninsuredRate is the share of the population without health
	// insurance, 0-1.
	UninsuredRate float64

	// Population is the resident population estimate.
	Population int
}

// OverlayLoader supplies health-equity overlays keyed by geo code.
type OverlayLoader interface {
	// Load returns overlays keyed by geo code, e.g. "US-TX".
	Load(ctx context.Context) (map[string]Overlay, error)
}

// StaticOverlayLoader serves a built-in snapshot of state vulnerability
// and coverage figures. It stands in until a live data source is wired.
type StaticOverlayLoader struct{}

// NewStaticOverlayLoader returns the built-in overlay source.
func NewStaticOverlayLoader() *StaticOverlayLoader {
	return &StaticOverlayLoader{}
}

// staticOverlays holds 2022 ACS / CDC SVI state figures for the states
// where the numbers diverge most from the national baseline.
var staticOverlays = map[string]Overlay{
	"US-TX": {Vulnerability: 0.74, UninsuredRate: 0.165, Population: 30029572},
	"US-MS": {Vulnerability: 0.81, UninsuredRate: 0.107, Population: 2940057},
	"US-LA": {Vulnerability: 0.79, UninsuredRate: 0.074, Population: 4590241},
	"US-NM": {Vulnerability: 0.76, UninsuredRate: 0.089, Population: 2113344},
	"US-FL": {Vulnerability: 0.68, UninsuredRate: 0.108, Population: 22244823},
	"US-GA": {Vulnerability: 0.66, UninsuredRate: 0.116, Population: 10912876},
	"US-OK": {Vulnerability: 0.70, UninsuredRate: 0.119, Population: 4019800},
	"US-AZ": {Vulnerability: 0.64, UninsuredRate: 0.099, Population: 7359197},
	"US-NV": {Vulnerability: 0.67, UninsuredRate: 0.105, Population: 3177772},
	"US-AR": {Vulnerability: 0.73, UninsuredRate: 0.079, Population: 3045637},
	"US-AL": {Vulnerability: 0.72, UninsuredRate: 0.086, Population: 5074296},
	"US-WV": {Vulnerability: 0.69, UninsuredRate: 0.058, Population: 1775156},
	"US-KY": {Vulnerability: 0.68, UninsuredRate: 0.057, Population: 4512310},
	"US-SC": {Vulnerability: 0.65, UninsuredRate: 0.094, Population: 5282634},
	"US-TN": {Vulnerability: 0.63, UninsuredRate: 0.094, Population: 7051339},
	"US-NC": {Vulnerability: 0.60, UninsuredRate: 0.098, Population: 10698973},
	"US-CA": {Vulnerability: 0.58, UninsuredRate: 0.065, Population: 39029342},
	"US-NY": {Vulnerability: 0.52, UninsuredRate: 0.049, Population: 19677151},
	"US-MA": {Vulnerability: 0.38, UninsuredRate: 0.024, Population: 6981974},
	"US-VT": {Vulnerability: 0.31, UninsuredRate: 0.036, Population: 647064},
	"US-MN": {Vulnerability: 0.35, UninsuredRate: 0.045, Population: 5717184},
	"US-NH": {Vulnerability: 0.29, UninsuredRate: 0.052, Population: 1395231},
}

// Load returns the built-in overlay snapshot.
func (l *StaticOverlayLoader) Load(ctx context.Context) (map[string]Overlay, error) {
	overlays := make(map[string]Overlay, len(staticOverlays))
	for code, overlay := range staticOverlays {
		overlays[code] = overlay
	}
	return overlays, nil
}

// Refresh applies overlays from the loader onto every stored region that
// has one. Regions without overlay data are left as they are.
// Returns the number of regions updated.
func Refresh(ctx context.Context, loader OverlayLoader, regions storage.RegionRepository) (int, error) {
	if regions == nil {
		return 0, ErrNilRegionRepository
	}
	logger := slog.Default().With("component", "geo-overlay")

	overlays, err := loader.Load(ctx)
	if err != nil {
		return 0, err
	}

	stored, err := regions.ListRegions(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, region := range stored {
		overlay, ok := overlays[region.GeoCode]
		if !ok {
			continue
		}
		region.Vulnerability = overlay.Vulnerability
		region.UninsuredRate = overlay.UninsuredRate
		if overlay.Population > 0 {
			region.Population = overlay.Population
		}
		if err := regions.UpsertRegions(ctx, region); err != nil {
			return updated, err
		}
		updated++
	}

	logger.Info("applied vulnerability overlay",
		"regions", len(stored), "updated", updated)
	return updated, nil
}
