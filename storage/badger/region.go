package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/storage"
)

// RegionRepository implements storage.RegionRepository for BadgerDB.
// Region IDs are content hashes of the geo code, so upserts are keyed
// directly without a sequence.
type RegionRepository struct {
	backend *Backend
}

var _ storage.RegionRepository = (*RegionRepository)(nil)

// NewRegionRepository creates a new RegionRepository.
func NewRegionRepository(backend *Backend) (*RegionRepository, error) {
	return &RegionRepository{backend: backend}, nil
}

// Close releases repository resources.
func (r *RegionRepository) Close() error {
	return nil
}

// UpsertRegions inserts or updates regions keyed by geo code.
func (r *RegionRepository) UpsertRegions(ctx context.Context, regions ...*core.Region) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, region := range regions {
			if err := core.ValidateRegion(region); err != nil {
				return err
			}
			region.Id = core.RegionID(region.GeoCode)
			region.UpdatedAt = time.Now().UTC()

			key := makeRegionKey(region.Id)
			if err := tx.Set(key, storage.MarshalRegion(region)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetRegion retrieves a region by geo code.
func (r *RegionRepository) GetRegion(ctx context.Context, geoCode string) (*core.Region, error) {
	var result *core.Region
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeRegionKey(core.RegionID(geoCode)))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalRegion(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// ListRegions retrieves all regions.
func (r *RegionRepository) ListRegions(ctx context.Context) ([]*core.Region, error) {
	var results []*core.Region
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(regionRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var region *core.Region
			err := iter.Item().Value(func(val []byte) error {
				var unmarshalErr error
				region, unmarshalErr = storage.UnmarshalRegion(val)
				return unmarshalErr
			})
			if err != nil {
				return err
			}
			if region != nil {
				results = append(results, region)
			}
		}
		return nil
	}, false)

	return results, err
}
