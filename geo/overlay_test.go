package geo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/storage/badger"
)

func TestStateCentroid(t *testing.T) {
	lat, lon, ok := StateCentroid("TX")
	require.True(t, ok)
	assert.InDelta(t, 31.48, lat, 0.1)
	assert.InDelta(t, -99.33, lon, 0.1)

	_, _, ok = StateCentroid("ZZ")
	assert.False(t, ok)
}

func TestRefresh_AppliesOverlay(t *testing.T) {
	repos, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		repos.Close()
		backend.Close()
	})
	ctx := context.Background()

	require.NoError(t, repos.Regions.UpsertRegions(ctx,
		&core.Region{GeoCode: "US-TX", Name: "Texas", Level: core.GeoLevelState},
		&core.Region{GeoCode: "US-XX", Name: "Nowhere", Level: core.GeoLevelState},
	))

	updated, err := Refresh(ctx, NewStaticOverlayLoader(), repos.Regions)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	texas, err := repos.Regions.GetRegion(ctx, "US-TX")
	require.NoError(t, err)
	assert.InDelta(t, 0.74, texas.Vulnerability, 1e-9)
	assert.Greater(t, texas.Population, 0)

	// Regions without overlay data are untouched
	nowhere, err := repos.Regions.GetRegion(ctx, "US-XX")
	require.NoError(t, err)
	assert.Zero(t, nowhere.Vulnerability)
}

func TestRefresh_NilRepository(t *testing.T) {
	_, err := Refresh(context.Background(), NewStaticOverlayLoader(), nil)
	assert.ErrorIs(t, err, ErrNilRegionRepository)
}
