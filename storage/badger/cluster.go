package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/storage"
)

// ClusterRepository implements storage.ClusterRepository for BadgerDB.
type ClusterRepository struct {
	backend *Backend
}

var _ storage.ClusterRepository = (*ClusterRepository)(nil)

// NewClusterRepository creates a new ClusterRepository.
func NewClusterRepository(backend *Backend) (*ClusterRepository, error) {
	return &ClusterRepository{backend: backend}, nil
}

// Close releases repository resources.
func (r *ClusterRepository) Close() error {
	return nil
}

// ReplaceClusters deletes all existing clusters and stores the given set.
// Each full refit invalidates every previous cluster assignment, so the
// set is replaced wholesale rather than merged.
func (r *ClusterRepository) ReplaceClusters(ctx context.Context, clusters ...*core.Cluster) error {
	if err := r.backend.DropPrefixes([]byte(clusterRecordPrefix + ":")); err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, cluster := range clusters {
			key := makeClusterKey(cluster.Id)
			if err := tx.Set(key, storage.MarshalCluster(cluster)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetCluster retrieves a single cluster by ID.
func (r *ClusterRepository) GetCluster(ctx context.Context, id core.ID) (*core.Cluster, error) {
	var result *core.Cluster
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeClusterKey(id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalCluster(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// ListClusters retrieves all clusters.
func (r *ClusterRepository) ListClusters(ctx context.Context) ([]*core.Cluster, error) {
	var results []*core.Cluster
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(clusterRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var cluster *core.Cluster
			err := iter.Item().Value(func(val []byte) error {
				var unmarshalErr error
				cluster, unmarshalErr = storage.UnmarshalCluster(val)
				return unmarshalErr
			})
			if err != nil {
				return err
			}
			if cluster != nil {
				results = append(results, cluster)
			}
		}
		return nil
	}, false)

	return results, err
}
